package organizer

// Reasons recorded on outcomes that did not move a file.
const (
	ReasonDryRun          = "dry_run"
	ReasonAlreadyInTarget = "already_in_target"
	ReasonSamePath        = "same_path"
)

// MoveOutcome records what happened to one examined file. Values are created
// once and never modified.
type MoveOutcome struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
	Moved       bool   `json:"moved"`
	Reason      string `json:"reason,omitempty"`
}

// Skipped reports whether the file was intentionally left in place.
func (o MoveOutcome) Skipped() bool {
	if o.Moved {
		return false
	}
	switch o.Reason {
	case ReasonDryRun, ReasonAlreadyInTarget, ReasonSamePath:
		return true
	default:
		return false
	}
}

// Failed reports whether the move was attempted and did not succeed.
func (o MoveOutcome) Failed() bool {
	return !o.Moved && !o.Skipped()
}

// RunSummary aggregates the outcomes of one Organize call.
// Examined always equals Moved + Skipped + Errors.
type RunSummary struct {
	Examined int `json:"examined"`
	Moved    int `json:"moved"`
	Skipped  int `json:"skipped"`
	Errors   int `json:"errors"`
}

func (s *RunSummary) record(o MoveOutcome) {
	switch {
	case o.Moved:
		s.Moved++
	case o.Skipped():
		s.Skipped++
	default:
		s.Errors++
	}
}
