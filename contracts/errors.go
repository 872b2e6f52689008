package contracts

import "errors"

var (
	RetryErr               = errors.New("retry")
	TimeoutErr             = errors.New("timed out")
	StatusErr              = errors.New("unexpected http status")
	CorruptArchiveErr      = errors.New("not a valid zip archive or corrupted")
	ValueNotFoundErr       = errors.New("value not found")
	UnsupportedPlatformErr = errors.New("only supported on windows")
	InterruptedErr         = errors.New("interrupted by user")
)
