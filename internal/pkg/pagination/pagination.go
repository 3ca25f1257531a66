package pagination

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// ErrInvalidValue is returned when a pagination parameter is not a
// valid number
var ErrInvalidValue = errors.New("pagination parameter is not a valid number")

// DefaultLimit is the default number of items per window
const DefaultLimit = 10

// MaxLimit is the maximum number of items per window
const MaxLimit = 100

// Window represents an offset/limit request window
type Window struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// GetWindow extracts the offset/limit window from the request.
// Non-numeric values are an error, not a silent default.
func GetWindow(c *fiber.Ctx) (*Window, error) {
	offset, err := strconv.Atoi(c.Query("offset", "0"))
	if err != nil {
		return nil, ErrInvalidValue
	}

	limit, err := strconv.Atoi(c.Query("limit", strconv.Itoa(DefaultLimit)))
	if err != nil {
		return nil, ErrInvalidValue
	}

	if offset < 0 {
		offset = 0
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return &Window{Offset: offset, Limit: limit}, nil
}

// Slice applies the window to a slice length and returns the bounds
// [from, to) clamped to the slice
func (w *Window) Slice(length int) (int, int) {
	from := w.Offset
	if from > length {
		from = length
	}
	to := w.Offset + w.Limit
	if to > length {
		to = length
	}
	return from, to
}
