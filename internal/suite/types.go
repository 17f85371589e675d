package suite

// Suite is a YAML file of expressions with their expected outcome.
type Suite struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Cases       []Case `yaml:"cases"`
}

// Case expects either a display result (Want) or a failure of the given
// error kind (Error). Postfix, when set, is compared with the compiled form.
type Case struct {
	ID         string `yaml:"id"`
	Expression string `yaml:"expression"`
	Postfix    string `yaml:"postfix,omitempty"`
	Want       string `yaml:"want,omitempty"`
	Error      string `yaml:"error,omitempty"`
}

// ExpectsError reports whether the case describes a rejected expression.
func (c Case) ExpectsError() bool {
	return c.Error != ""
}

var knownKinds = map[string]struct{}{
	"malformed_number":       {},
	"unbalanced_parentheses": {},
	"insufficient_operands":  {},
	"trailing_operands":      {},
	"empty_expression":       {},
}
