// Package uniuri generates random identifiers from crypto/rand, such as the
// token that ties a settings form to the dialog it was rendered from.
package uniuri

import (
	"crypto/rand"
)

// StdLen gives about 95 bits of entropy with StdChars.
const StdLen = 16

// StdChars is the alphabet of New.
var StdChars = []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789") //nolint:gochecknoglobals

// New returns a random string of StdLen standard characters.
func New() string {
	return NewLenChars(StdLen, StdChars)
}

// NewLen returns a random string of length standard characters.
func NewLen(length int) string {
	return NewLenChars(length, StdChars)
}

// NewLenChars returns a random string of length characters taken from chars
// (2 to 256 of them). Bytes that would bias the modulo are rejected.
func NewLenChars(length int, chars []byte) string {
	if length <= 0 {
		return ""
	}

	clen := len(chars)
	if clen < 2 || clen > 256 {
		panic("uniuri: wrong charset length for NewLenChars")
	}

	limit := 256 - 256%clen
	out := make([]byte, 0, length)
	buf := make([]byte, length+length/2)

	for {
		if _, err := rand.Read(buf); err != nil {
			panic("uniuri: error reading random bytes: " + err.Error())
		}

		for _, b := range buf {
			if int(b) >= limit {
				continue
			}

			out = append(out, chars[int(b)%clen])
			if len(out) == length {
				return string(out)
			}
		}
	}
}
