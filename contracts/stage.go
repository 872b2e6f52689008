package contracts

import "fmt"

type StageStatus int

const (
	StageOK StageStatus = iota
	StageWarning
	StageFatal
)

func (this StageStatus) String() string {
	switch this {
	case StageOK:
		return "ok"
	case StageWarning:
		return "warning"
	case StageFatal:
		return "fatal"
	default:
		return fmt.Sprintf("status(%d)", int(this))
	}
}

type StageResult struct {
	Stage  string
	Status StageStatus
	Err    error
}

func (this StageResult) Fatal() bool   { return this.Status == StageFatal }
func (this StageResult) Warning() bool { return this.Status == StageWarning }
