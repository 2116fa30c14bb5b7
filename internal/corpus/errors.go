package corpus

import "errors"

var (
	ErrCoverage      = errors.New("corpus does not cover the alphabet")
	ErrRetryLimit    = errors.New("too many rejected draws for one token")
	ErrOutOfRange    = errors.New("distance runs past the end of the corpus")
	ErrTruncated     = errors.New("input ends inside a distance token")
	ErrFilterShort   = errors.New("filter file is smaller than the filter skip count")
	ErrEmptyAlphabet = errors.New("byte list holds no bytes")
	ErrShortInput    = errors.New("input is smaller than the start offset")
)
