package validation

import (
	"fmt"
	"strings"
)

const (
	// MaxTextLen максимальная длина текста цитаты
	MaxTextLen = 500
	// MaxAuthorLen максимальная длина имени автора
	MaxAuthorLen = 100
	// MaxCategoryLen максимальная длина названия категории
	MaxCategoryLen = 50
)

// ValidateQuoteInput проверяет поля новой цитаты перед сохранением.
// Все три поля обязательны; значения сравниваются после обрезки пробелов.
func ValidateQuoteInput(text, author, category string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("quote text cannot be empty")
	}
	if len(text) > MaxTextLen {
		return fmt.Errorf("quote text must not exceed %d characters", MaxTextLen)
	}

	if strings.TrimSpace(author) == "" {
		return fmt.Errorf("author cannot be empty")
	}
	if len(author) > MaxAuthorLen {
		return fmt.Errorf("author must not exceed %d characters", MaxAuthorLen)
	}

	if strings.TrimSpace(category) == "" {
		return fmt.Errorf("category cannot be empty")
	}
	if len(category) > MaxCategoryLen {
		return fmt.Errorf("category must not exceed %d characters", MaxCategoryLen)
	}

	return nil
}
