package pagination

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrPageOutOfRange is returned for pages whose offset does not fit in an int.
var ErrPageOutOfRange = errors.New("page out of range")

// OffsetRequest represents an offset-based pagination request
type OffsetRequest struct {
	Page int `json:"page" query:"page"`
	Size int `json:"size" query:"size"`
}

// Validate validates and normalizes offset pagination parameters
func (r *OffsetRequest) Validate() error {
	if r.Page <= 0 {
		r.Page = 1
	}
	if r.Size <= 0 {
		r.Size = PageDefaultSize
	}
	if r.Size > PageMaxSize {
		r.Size = PageMaxSize
	}
	if r.Page-1 > math.MaxInt/r.Size {
		return fmt.Errorf("%w: page %d with size %d", ErrPageOutOfRange, r.Page, r.Size)
	}
	return nil
}

// ParseOffsetRequest reads page and size query values. Missing or
// non-numeric values fall back to the defaults.
func ParseOffsetRequest(page, size string) (OffsetRequest, error) {
	r := OffsetRequest{}
	if v, err := strconv.Atoi(page); err == nil {
		r.Page = v
	}
	if v, err := strconv.Atoi(size); err == nil {
		r.Size = v
	}
	if err := r.Validate(); err != nil {
		return OffsetRequest{}, err
	}
	return r, nil
}

// Offset is the number of items before the first item of the page.
func (r OffsetRequest) Offset() int {
	return (r.Page - 1) * r.Size
}
