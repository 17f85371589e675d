package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitAndTrim(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, SplitAndTrim(" a , ,b ", ","))
	assert.Nil(t, SplitAndTrim("", ","))
	assert.Nil(t, SplitAndTrim(" , ", ","))
}
