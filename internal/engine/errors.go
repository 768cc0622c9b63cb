package engine

type constError string

func (e constError) Error() string { return string(e) }

// ErrPersistFailed marks a calculation whose totals could not be cached.
// The computed result returned alongside it is still valid.
const ErrPersistFailed constError = "persisting calculation results failed"
