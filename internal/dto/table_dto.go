package dto

// TableInfo describes one browsable table for the UI.
type TableInfo struct {
	Key     string   `json:"key"`
	Columns []string `json:"columns"`
}

// InsertResponse carries the identity of a newly inserted row.
type InsertResponse struct {
	ID int64 `json:"id"`
}
