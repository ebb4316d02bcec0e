package models

import "time"

// Resolution describes how a conflict was settled.
type Resolution string

const (
	ResolutionNone       Resolution = ""            // конфликт ещё не разрешён
	ResolutionKeptLocal  Resolution = "kept_local"  // оставлена локальная версия
	ResolutionKeptRemote Resolution = "kept_remote" // оставлена серверная версия
)

// ConflictEntry is an immutable snapshot of a detected divergence between the
// local and remote versions of one quote. Both versions are frozen copies
// taken at detection time and are never mutated afterwards.
type ConflictEntry struct {
	DetectedAt time.Time  `json:"detected_at"`
	QuoteID    string     `json:"quote_id"`
	Local      Quote      `json:"local"`
	Remote     Quote      `json:"remote"`
	Resolution Resolution `json:"resolution"`
	Resolved   bool       `json:"resolved"`
}

// NewConflictEntry freezes both sides of a divergence.
func NewConflictEntry(local, remote *Quote, detectedAt time.Time) ConflictEntry {
	return ConflictEntry{
		QuoteID:    remote.ID,
		Local:      *local.Clone(),
		Remote:     *remote.Clone(),
		DetectedAt: detectedAt,
		Resolved:   false,
		Resolution: ResolutionNone,
	}
}
