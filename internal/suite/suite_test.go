package suite

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DjordjeVuckovic/rpn-calc/internal/apperr"
	"github.com/DjordjeVuckovic/rpn-calc/internal/rpn"
)

func TestParse(t *testing.T) {
	t.Run("valid suite", func(t *testing.T) {
		data := `
name: basic
cases:
  - id: add
    expression: "1+1"
    want: "2.00"
  - id: bad
    expression: "(1"
    error: unbalanced_parentheses
`
		s, err := Parse([]byte(data))
		require.NoError(t, err)
		assert.Equal(t, "basic", s.Name)
		require.Len(t, s.Cases, 2)
		assert.False(t, s.Cases[0].ExpectsError())
		assert.True(t, s.Cases[1].ExpectsError())
	})

	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{
			name:    "no cases",
			data:    "name: empty\n",
			wantErr: "suite has no cases",
		},
		{
			name:    "missing id",
			data:    "cases:\n  - expression: \"1\"\n    want: \"1.00\"\n",
			wantErr: "case at index 0 has no id",
		},
		{
			name:    "duplicate id",
			data:    "cases:\n  - id: a\n    want: \"1.00\"\n  - id: a\n    want: \"1.00\"\n",
			wantErr: `duplicate case id "a"`,
		},
		{
			name:    "no expectation",
			data:    "cases:\n  - id: a\n    expression: \"1\"\n",
			wantErr: "needs either want or error",
		},
		{
			name:    "both expectations",
			data:    "cases:\n  - id: a\n    want: \"1.00\"\n    error: malformed_number\n",
			wantErr: "sets both want and error",
		},
		{
			name:    "unknown kind",
			data:    "cases:\n  - id: a\n    error: overflow\n",
			wantErr: `unknown error kind "overflow"`,
		},
		{
			name:    "invalid yaml",
			data:    "cases: [",
			wantErr: "parse suite YAML",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	s, err := LoadFromFile(filepath.Join("testdata", "arithmetic.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "arithmetic", s.Name)
	assert.NotEmpty(t, s.Cases)

	_, err = LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestRun_Arithmetic(t *testing.T) {
	s, err := LoadFromFile(filepath.Join("testdata", "arithmetic.yaml"))
	require.NoError(t, err)

	res := Run(s, rpn.NewEngine())
	for _, cr := range res.Cases {
		assert.True(t, cr.Passed, "%s: %s", cr.Case.ID, cr.Reason)
	}
	assert.True(t, res.OK())
	assert.Equal(t, len(s.Cases), res.Passed)
}

type fixedCalc struct {
	postfix string
	result  string
	err     error
}

func (f fixedCalc) Calculate(string) (string, string, error) {
	return f.postfix, f.result, f.err
}

func TestRun_Failures(t *testing.T) {
	tests := []struct {
		name   string
		c      Case
		calc   fixedCalc
		reason string
	}{
		{
			name:   "wrong result",
			c:      Case{ID: "a", Want: "2.00"},
			calc:   fixedCalc{result: "3.00"},
			reason: "want 2.00, got 3.00",
		},
		{
			name:   "unexpected failure",
			c:      Case{ID: "a", Want: "2.00"},
			calc:   fixedCalc{err: &apperr.TrailingOperandsError{Remaining: 2}},
			reason: "want 2.00, got error trailing_operands",
		},
		{
			name:   "missing failure",
			c:      Case{ID: "a", Error: "malformed_number"},
			calc:   fixedCalc{result: "1.00"},
			reason: "want error malformed_number, got 1.00",
		},
		{
			name:   "other failure",
			c:      Case{ID: "a", Error: "malformed_number"},
			calc:   fixedCalc{err: apperr.ErrEmptyExpression},
			reason: "want error malformed_number, got empty_expression",
		},
		{
			name:   "postfix mismatch",
			c:      Case{ID: "a", Want: "1.00", Postfix: "1"},
			calc:   fixedCalc{postfix: "1 0 +", result: "1.00"},
			reason: `want postfix "1", got "1 0 +"`,
		},
		{
			name:   "non calculation error",
			c:      Case{ID: "a", Want: "1.00"},
			calc:   fixedCalc{err: errors.New("boom")},
			reason: "unexpected error: boom",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Run(&Suite{Cases: []Case{tt.c}}, tt.calc)
			require.Len(t, res.Cases, 1)
			assert.False(t, res.OK())
			assert.Equal(t, 1, res.Failed)
			assert.Equal(t, tt.reason, res.Cases[0].Reason)
		})
	}
}

func TestWriteTable(t *testing.T) {
	res := Run(&Suite{
		Name: "mini",
		Cases: []Case{
			{ID: "ok", Expression: "2+3*4", Want: "14.00"},
			{ID: "bad", Expression: "(1", Error: "unbalanced_parentheses"},
			{ID: "wrong", Expression: "1+1", Want: "3.00"},
		},
	}, rpn.NewEngine())

	var buf bytes.Buffer
	WriteTable(res, &buf)
	out := buf.String()

	assert.Contains(t, out, "=== mini ===")
	assert.Contains(t, out, "2 3 4 * +")
	assert.Contains(t, out, "error: unbalanced_parentheses")
	assert.Contains(t, out, "FAIL: want 3.00, got 2.00")
	assert.Contains(t, out, "2 passed, 1 failed")
	assert.Contains(t, out, "latency: min")
	assert.Equal(t, 3, res.Latency.Samples)
}
