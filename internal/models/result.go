package models

// DeleteResult reports how many records a delete touched
type DeleteResult struct {
	RemovedCount int64 `json:"removed_count"`
}
