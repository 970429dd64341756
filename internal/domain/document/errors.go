package document

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrLastItem is returned when removing the only remaining line item
	ErrLastItem = errors.New("a document must keep at least one item")

	// ErrItemNotFound is returned when the item id is not in the document
	ErrItemNotFound = errors.New("line item not found")
)

// FieldError reports one failing input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every failing field so the caller can surface
// them all at once. A nil slice means the input is valid.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, e := range v {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

func itemField(index int, name string) string {
	return fmt.Sprintf("items[%d].%s", index, name)
}
