package importers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/readinglist/internal/entities"
)

func TestParseJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []entities.Book
	}{
		{
			name: "export document",
			input: `{
				"exported_at": "2024-06-15T14:30:00Z",
				"books": [
					{"id": 7, "title": "Dune", "author": "Frank Herbert", "read": true},
					{"id": 9, "title": "Emma", "author": "Jane Austen", "read": false}
				]
			}`,
			expected: []entities.Book{
				{Title: "Dune", Author: "Frank Herbert", Read: true},
				{Title: "Emma", Author: "Jane Austen"},
			},
		},
		{
			name:  "bare array with surrounding whitespace",
			input: "\n  [{\"title\": \"  Dune \", \"author\": \"Herbert\"}]\n",
			expected: []entities.Book{
				{Title: "Dune", Author: "Herbert"},
			},
		},
		{
			name:     "empty document",
			input:    `{"books": []}`,
			expected: []entities.Book{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := ParseJSON(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, parsed)
		})
	}
}

func TestParseJSON_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"malformed", `{"books": [`},
		{"missing title", `[{"author": "Herbert"}]`},
		{"blank author", `[{"title": "Dune", "author": "   "}]`},
		{"wrong type", `{"books": "Dune"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseJSON(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}
