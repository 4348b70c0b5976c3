package apperr

// Process exit codes.
const (
	ExitOK          = 0
	ExitDomain      = 1
	ExitApplication = 2
	ExitAdapter     = 3
	ExitUnexpected  = 99
)

// ExitCode maps err to the process exit code.
// IO failures share the adapter code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	switch KindOf(err) {
	case KindDomain:
		return ExitDomain
	case KindApplication:
		return ExitApplication
	case KindAdapter, KindIO:
		return ExitAdapter
	default:
		return ExitUnexpected
	}
}
