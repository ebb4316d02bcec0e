package models

import (
	"fmt"
	"time"
)

// Origin описывает происхождение текущего значения записи:
// какая сторона последней определила её содержимое.
type Origin string

const (
	OriginLocal  Origin = "local"  // запись создана/изменена локально
	OriginRemote Origin = "remote" // значение получено с сервера
)

// ID prefixes. Locally created quotes use the creation time, remote-derived
// quotes use the server's native id so repeated fetches map to the same key.
const (
	localIDPrefix  = "local-"
	remoteIDPrefix = "remote-"
)

// Quote represents one synchronized quote record.
type Quote struct {
	UpdatedAt time.Time `json:"updated_at"`
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Author    string    `json:"author"`
	Category  string    `json:"category"`
	Origin    Origin    `json:"origin"`
}

// NewLocalQuote creates a locally originated quote with a time-derived id.
func NewLocalQuote(text, author, category string, now time.Time) *Quote {
	return &Quote{
		ID:        fmt.Sprintf("%s%d", localIDPrefix, now.UnixNano()),
		Text:      text,
		Author:    author,
		Category:  category,
		UpdatedAt: now,
		Origin:    OriginLocal,
	}
}

// RemoteQuoteID derives the canonical local id for a remote post.
// Детерминированно: один и тот же серверный id всегда даёт один и тот же
// локальный id, что делает merge идемпотентным.
func RemoteQuoteID(nativeID int) string {
	return fmt.Sprintf("%s%d", remoteIDPrefix, nativeID)
}

// ContentEquals reports whether the visible fields of both quotes match.
// UpdatedAt and Origin are deliberately excluded: a timestamp difference
// alone is never a conflict.
func (q *Quote) ContentEquals(other *Quote) bool {
	if other == nil {
		return false
	}
	return q.Text == other.Text &&
		q.Author == other.Author &&
		q.Category == other.Category
}

// Clone возвращает глубокую копию записи.
func (q *Quote) Clone() *Quote {
	if q == nil {
		return nil
	}
	clone := *q
	return &clone
}
