package lca

// constError is a sentinel error type that can be declared const.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors for input validation. Reference-data gaps (missing
// materials, densities, service lives) are never errors; they degrade to
// zero or a documented default instead.
const (
	// ErrInvalidFloorArea rejects a zero or negative gross floor area
	// before it can reach a division.
	ErrInvalidFloorArea constError = "gross floor area must be positive"

	// ErrInvalidStudyPeriod rejects a zero or negative study period.
	ErrInvalidStudyPeriod constError = "study period must be positive"
)
