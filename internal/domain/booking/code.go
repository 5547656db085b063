package booking

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

const (
	codeSuffixLen = 4
	hashLen       = 32
)

// NewCode builds a human-readable booking code: BK-YYYYMMDD-XXXX with a
// random uppercase hex suffix. Uniqueness is backed by a store constraint;
// callers retry on collision.
func NewCode(now time.Time) string {
	buf := make([]byte, codeSuffixLen/2)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms; fall back to a
		// time-derived suffix rather than aborting booking creation.
		return fmt.Sprintf("BK-%s-%04X", now.Format("20060102"), now.UnixNano()%0xFFFF)
	}
	return fmt.Sprintf("BK-%s-%s", now.Format("20060102"), strings.ToUpper(hex.EncodeToString(buf)))
}

// NewHash returns the 32-char opaque token that is the only caller-facing
// checkout reference, keeping sequential ids unguessable.
func NewHash() string {
	buf := make([]byte, hashLen/2)
	if _, err := rand.Read(buf); err != nil {
		return fmt.Sprintf("%032x", time.Now().UnixNano())
	}
	return hex.EncodeToString(buf)
}
