package token

// Tokenizer splits an input string into tokens. It never fails; malformed
// input surfaces through a Validator.
type Tokenizer interface {
	Tokenize(input string) []Token
}

// Validator rejects token sequences that cannot be compiled.
type Validator interface {
	Validate(tokens []Token) error
}
