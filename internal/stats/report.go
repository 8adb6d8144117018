package stats

import "github.com/google/uuid"

// Report wraps a Summary with run metadata for the JSON export. The run ID
// lets repeated exports over the same input be told apart; the Summary
// itself stays deterministic.
type Report struct {
	RunID   string  `json:"run_id"`
	Source  string  `json:"source"`
	Summary Summary `json:"summary"`
}

// NewReport stamps a Summary with a fresh run ID and its input path.
func NewReport(source string, s Summary) Report {
	return Report{
		RunID:   uuid.NewString(),
		Source:  source,
		Summary: s,
	}
}
