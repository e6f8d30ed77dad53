package diag

// Severity defines the urgency of a diagnostic, totally ordered from Info up
// to Fatal. Fatal is reserved for conditions that must propagate to a
// process-level abort regardless of the caller's recovery policy.
type Severity uint8

const (
	// SevInfo is for informational diagnostics.
	SevInfo Severity = iota
	// SevWarning is for recoverable conditions that execution proceeds past.
	SevWarning
	SevError
	SevFatal
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "Info"
	case SevWarning:
		return "Warning"
	case SevError:
		return "Error"
	case SevFatal:
		return "Fatal"
	}
	return "Unknown"
}
