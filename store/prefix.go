package store

import (
	"strings"
)

// KeyFunc builds slash-separated keys under a fixed prefix.
type KeyFunc func(parts ...string) []byte

func Prefixer(prefix string) KeyFunc {
	return func(parts ...string) []byte {
		k := strings.Join(append([]string{prefix}, parts...), "/")
		return []byte(k)
	}
}

// Sub returns a KeyFunc nested one level below k.
func (k KeyFunc) Sub(part string) KeyFunc {
	return Prefixer(string(k(part)))
}
