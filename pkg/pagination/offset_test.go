package pagination

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOffsetRequest(t *testing.T) {
	tests := []struct {
		name       string
		page, size string
		want       OffsetRequest
		wantErr    bool
	}{
		{"defaults", "", "", OffsetRequest{Page: 1, Size: PageDefaultSize}},
		{"explicit", "3", "5", OffsetRequest{Page: 3, Size: 5}},
		{"garbage", "x", "y", OffsetRequest{Page: 1, Size: PageDefaultSize}},
		{"negative", "-2", "0", OffsetRequest{Page: 1, Size: PageDefaultSize}},
		{"clamped", "1", "5000", OffsetRequest{Page: 1, Size: PageMaxSize}},
		{"offset overflow", "9223372036854775807", "100", OffsetRequest{}, true},
		{"last representable page", strconv.Itoa(math.MaxInt/100 + 1), "100", OffsetRequest{Page: math.MaxInt/100 + 1, Size: 100}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOffsetRequest(tt.page, tt.size)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrPageOutOfRange)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got.Offset(), 0)
		})
	}
}

func TestNewOffsetResult(t *testing.T) {
	r := NewOffsetResult([]int{1, 2}, 5, 1, 2)
	assert.True(t, r.HasMore)

	last := NewOffsetResult([]int{5}, 5, 3, 2)
	assert.False(t, last.HasMore)

	empty := NewOffsetResult[int](nil, 0, 1, 20)
	assert.NotNil(t, empty.Items)
	assert.Equal(t, 20, OffsetRequest{Page: 2, Size: 20}.Offset())
}
