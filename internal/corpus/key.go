package corpus

import (
	"encoding/binary"
	"time"

	"golang.org/x/crypto/blake2b"
)

// Clock lets tests replace the pause and the wall clock used for time keys.
type Clock struct {
	Sleep func(time.Duration)
	Now   func() time.Time
}

var SystemClock = Clock{Sleep: time.Sleep, Now: time.Now}

// TimeKey waits one second and derives a key from the Unix time, so two
// unkeyed runs started back to back never share a seed.
func TimeKey(c Clock) uint32 {
	c.Sleep(time.Second)
	k := uint32(c.Now().Unix())
	if k == 0 {
		k = 1
	}
	return k
}

// PhraseKey derives a key from a passphrase via BLAKE2b-256.
func PhraseKey(phrase string) uint32 {
	sum := blake2b.Sum256([]byte(phrase))
	k := binary.LittleEndian.Uint32(sum[:4])
	if k == 0 {
		// zero means "no key"
		k = 1
	}
	return k
}

// ResolveKey picks the explicit key, then the phrase, then the clock.
func ResolveKey(key uint32, phrase string, c Clock) uint32 {
	if key != 0 {
		return key
	}
	if phrase != "" {
		return PhraseKey(phrase)
	}
	return TimeKey(c)
}
