package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldPredicates(t *testing.T) {
	predicates := map[string]func(string) bool{
		"url":         ValidateURL,
		"description": ValidateDescription,
		"category":    ValidateCategory,
	}

	for name, fn := range predicates {
		t.Run(name, func(t *testing.T) {
			assert.False(t, fn(""))
			assert.True(t, fn("non-empty"))
			assert.True(t, fn(" "), "whitespace is not trimmed")
			assert.True(t, fn("tab\tand\nnewline"))
			assert.False(t, fn("ctl\x01x"))
			assert.False(t, fn("bad\xffutf8"))
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		url         string
		description string
		category    string
		wantField   string
		wantMsg     string
	}{
		{
			name:        "all fields present",
			url:         "http://a.com",
			description: "desc A",
			category:    "news",
		},
		{
			name:        "missing url",
			description: "desc A",
			category:    "news",
			wantField:   "URL",
			wantMsg:     MsgURL,
		},
		{
			name:      "missing description",
			url:       "http://a.com",
			category:  "news",
			wantField: "Description",
			wantMsg:   MsgDescription,
		},
		{
			name:        "missing category",
			url:         "http://a.com",
			description: "desc A",
			wantField:   "Category",
			wantMsg:     MsgCategory,
		},
		{
			name:        "control character in category",
			url:         "http://a.com",
			description: "desc A",
			category:    "ctl\x01x",
			wantField:   "Category",
			wantMsg:     MsgCategoryChars,
		},
		{
			name:        "invalid utf-8 in url",
			url:         "http://a.com/\xff",
			description: "desc A",
			category:    "news",
			wantField:   "URL",
			wantMsg:     MsgURLChars,
		},
		{
			name:        "noncharacter in description",
			url:         "http://a.com",
			description: "bad \uFFFE here",
			category:    "news",
			wantField:   "Description",
			wantMsg:     MsgDescriptionChars,
		},
		{
			name:        "non-ascii text is fine",
			url:         "http://a.com/café",
			description: "日本語 – emoji 🎉",
			category:    "news",
		},
		{
			name:      "everything missing reports url first",
			wantField: "URL",
			wantMsg:   MsgURL,
		},
		{
			name:      "description and category missing reports description",
			url:       "http://a.com",
			wantField: "Description",
			wantMsg:   MsgDescription,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.url, tt.description, tt.category)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			var fe *FieldError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tt.wantField, fe.Field)
			assert.Equal(t, tt.wantMsg, fe.Message)

			msg, ok := Message(err)
			assert.True(t, ok)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestMessage_OtherError(t *testing.T) {
	_, ok := Message(assert.AnError)
	assert.False(t, ok)
}

func TestNormalizeNewlines(t *testing.T) {
	tests := map[string]string{
		"line1\r\nline2": "line1\nline2",
		"old\rmac":       "old\nmac",
		"mixed\r\n\r\n":  "mixed\n\n",
		"plain":          "plain",
	}

	for in, want := range tests {
		assert.Equal(t, want, NormalizeNewlines(in))
	}
}
