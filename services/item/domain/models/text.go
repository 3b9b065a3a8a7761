package models

import "errors"

// Text is a required free-form string: present and non-empty, with no
// length or format constraint. Used for both Item.Name and Item.Description.
type Text string

var errEmptyText = errors.New("must not be empty")

// NewText returns s as Text, or an error when s is empty.
func NewText(s string) (Text, error) {
	if s == "" {
		return "", errEmptyText
	}
	return Text(s), nil
}

// String returns the underlying string value.
func (t Text) String() string {
	return string(t)
}
