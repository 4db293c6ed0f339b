package dto

// ReportDescriptor pairs a report key with its human-readable description,
// so the UI can offer reports by description rather than by number.
type ReportDescriptor struct {
	Key   string `json:"key"`
	Title string `json:"title"`
}
