package utils

import (
	"crypto/rand"
	"encoding/base32"
	"strings"
)

// codeAlphabet avoids characters that read ambiguously on paper (0/O, 1/I).
const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

var codeEncoding = base32.NewEncoding(codeAlphabet).WithPadding(base32.NoPadding)

// GenerateAuthorizationCode returns a random human-transcribable code for
// the single-use visit authorization flow.
func GenerateAuthorizationCode(size int) (string, error) {
	if size <= 0 {
		size = 10
	}
	buffer := make([]byte, size)
	if _, err := rand.Read(buffer); err != nil {
		return "", err
	}
	code := codeEncoding.EncodeToString(buffer)
	if len(code) > size {
		code = code[:size]
	}
	return code, nil
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
