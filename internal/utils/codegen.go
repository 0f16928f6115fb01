package utils

import (
	"crypto/rand"
	"strconv"
	"strings"
	"time"
)

const codeLength = 8

const codeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GenerateUniqueCode produces an 8-character uppercase display code by mixing
// the fast-moving tail of the current unix-milli timestamp with random
// characters. The caller must check the candidate against existing records and
// regenerate on collision.
func GenerateUniqueCode() string {
	ts := strings.ToUpper(strconv.FormatInt(time.Now().UnixMilli(), 36))
	if len(ts) > 4 {
		ts = ts[len(ts)-4:]
	}

	buf := make([]byte, codeLength)
	// crypto/rand.Read never fails on supported platforms
	_, _ = rand.Read(buf)
	for i, b := range buf {
		buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}

	code := ts + string(buf)
	return code[:codeLength]
}
