package dto

// ExpressionRequest carries an infix expression as typed on the display.
type ExpressionRequest struct {
	Expression string `json:"expression" example:"(2+3)*4"`
}

// PostfixRequest carries an expression already in postfix form.
type PostfixRequest struct {
	Postfix string `json:"postfix" example:"2 3 + 4 *"`
}

type TokenizeResponse struct {
	Expression string   `json:"expression"`
	Tokens     []string `json:"tokens"`
}

type CompileResponse struct {
	Expression string `json:"expression"`
	Postfix    string `json:"postfix"`
}

type EvaluateResponse struct {
	ID         string `json:"id"`
	Expression string `json:"expression"`
	Postfix    string `json:"postfix"`
	Result     string `json:"result"`
}

type EvaluatePostfixResponse struct {
	Postfix string `json:"postfix"`
	Result  string `json:"result"`
}

// EventRequest is a key press sent to a calculator session.
type EventRequest struct {
	Kind string `json:"kind" example:"glyph" enums:"glyph,clear,result"`
	Text string `json:"text,omitempty" example:"7"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
	Title string `json:"title,omitempty"`
}
