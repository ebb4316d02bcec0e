package models

// SyncStatus is the terminal status of one reconciliation cycle.
type SyncStatus string

const (
	SyncStatusOK     SyncStatus = "ok"     // цикл завершился успешно
	SyncStatusFailed SyncStatus = "failed" // транзиентная ошибка, цикл прерван
)

// SyncSummary describes the outcome of one reconciliation cycle.
// It is ephemeral and never persisted.
type SyncSummary struct {
	Status    SyncStatus `json:"status"`
	Added     int        `json:"added"`
	Updated   int        `json:"updated"`
	Conflicts int        `json:"conflicts"`
}
