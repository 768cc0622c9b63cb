package equiv

// constError is a sentinel error type that can be declared const.
type constError string

func (e constError) Error() string { return string(e) }

// ErrNotFinite reports a carbon value that is NaN or infinite.
const ErrNotFinite constError = "carbon value is not finite"
