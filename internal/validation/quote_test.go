package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateQuoteInput(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		author   string
		category string
		wantErr  bool
	}{
		{
			name:     "valid input",
			text:     "Stay hungry, stay foolish.",
			author:   "Steve Jobs",
			category: "Inspiration",
			wantErr:  false,
		},
		{
			name:     "empty text",
			text:     "",
			author:   "Author",
			category: "Category",
			wantErr:  true,
		},
		{
			name:     "whitespace only text",
			text:     "   ",
			author:   "Author",
			category: "Category",
			wantErr:  true,
		},
		{
			name:     "empty author",
			text:     "Text",
			author:   "",
			category: "Category",
			wantErr:  true,
		},
		{
			name:     "empty category",
			text:     "Text",
			author:   "Author",
			category: "",
			wantErr:  true,
		},
		{
			name:     "text too long",
			text:     strings.Repeat("a", MaxTextLen+1),
			author:   "Author",
			category: "Category",
			wantErr:  true,
		},
		{
			name:     "author too long",
			text:     "Text",
			author:   strings.Repeat("a", MaxAuthorLen+1),
			category: "Category",
			wantErr:  true,
		},
		{
			name:     "category too long",
			text:     "Text",
			author:   "Author",
			category: strings.Repeat("a", MaxCategoryLen+1),
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateQuoteInput(tt.text, tt.author, tt.category)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
