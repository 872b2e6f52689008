package contracts

type VerificationOutcome int

const (
	VerificationFailed VerificationOutcome = iota
	VerificationAmbiguous
	VerificationPassed
)

func (this VerificationOutcome) String() string {
	switch this {
	case VerificationPassed:
		return "passed"
	case VerificationAmbiguous:
		return "ambiguous"
	default:
		return "failed"
	}
}

type VerificationResult struct {
	Succeeded      bool
	ReportedOutput string
	Outcome        VerificationOutcome
	ExitCode       int
	Err            error
}
