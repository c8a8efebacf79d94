// Package validation checks bookmark input before it reaches the store.
package validation

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// User-facing messages, one per field.
const (
	MsgURL         = "Please enter a URL."
	MsgDescription = "Please enter a description."
	MsgCategory    = "Please enter a category."
)

// Shown when a field holds control characters or invalid UTF-8, which the
// XML export cannot carry.
const (
	MsgURLChars         = "The URL contains characters that cannot be exported."
	MsgDescriptionChars = "The description contains characters that cannot be exported."
	MsgCategoryChars    = "The category contains characters that cannot be exported."
)

const fieldRules = "required,xmlchars"

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("xmlchars", validateXMLChars); err != nil {
		panic(err)
	}
	return v
}

// input is validated in field order, so the first error is always the
// first bad field in url, description, category order.
type input struct {
	URL         string `validate:"required,xmlchars"`
	Description string `validate:"required,xmlchars"`
	Category    string `validate:"required,xmlchars"`
}

var messages = map[string]map[string]string{
	"required": {
		"URL":         MsgURL,
		"Description": MsgDescription,
		"Category":    MsgCategory,
	},
	"xmlchars": {
		"URL":         MsgURLChars,
		"Description": MsgDescriptionChars,
		"Category":    MsgCategoryChars,
	},
}

// FieldError reports the field that failed and the message to show the user.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Message
}

// ValidateURL reports whether url is non-empty and exportable.
func ValidateURL(url string) bool {
	return validate.Var(url, fieldRules) == nil
}

// ValidateDescription reports whether description is non-empty and exportable.
func ValidateDescription(description string) bool {
	return validate.Var(description, fieldRules) == nil
}

// ValidateCategory reports whether category is non-empty and exportable.
func ValidateCategory(category string) bool {
	return validate.Var(category, fieldRules) == nil
}

// Validate returns a *FieldError for the first invalid field, or nil.
// Values are not trimmed: a string of spaces counts as filled in.
func Validate(url, description, category string) error {
	err := validate.Struct(input{URL: url, Description: description, Category: category})
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	fe := fieldErrs[0]
	return &FieldError{Field: fe.StructField(), Message: messages[fe.Tag()][fe.StructField()]}
}

// Message returns the user message carried by err, if any.
func Message(err error) (string, bool) {
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe.Message, true
	}
	return "", false
}

var newlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// NormalizeNewlines turns CRLF and lone CR into LF. The CSV reader does the
// same on import, so stored values must already be LF-only to survive an
// export round trip.
func NormalizeNewlines(s string) string {
	return newlines.Replace(s)
}

// validateXMLChars accepts valid UTF-8 made only of XML 1.0 characters.
func validateXMLChars(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if !utf8.ValidString(s) {
		return false
	}
	for _, r := range s {
		if !isXMLChar(r) {
			return false
		}
	}
	return true
}

// Char ::= #x9 | #xA | #xD | [#x20-#xD7FF] | [#xE000-#xFFFD] | [#x10000-#x10FFFF]
func isXMLChar(r rune) bool {
	switch {
	case r == 0x09 || r == 0x0A || r == 0x0D:
		return true
	case r >= 0x20 && r <= 0xD7FF:
		return true
	case r >= 0xE000 && r <= 0xFFFD:
		return true
	case r >= 0x10000 && r <= 0x10FFFF:
		return true
	default:
		return false
	}
}
