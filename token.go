package gocalc

import (
	"errors"
	"fmt"
	"strings"
)

// validTokens is the alphabet the parser understands.
const validTokens = "+-*/0123456789()"

var ErrInvalidInput = errors.New("invalid input")

func isToken(c byte) bool {
	return strings.IndexByte(validTokens, c) >= 0
}

// Tokenize filters raw into the token stream consumed by Parse. Spaces and a
// trailing '=' are dropped. Any other character fails with ErrInvalidInput.
// An empty result is not an error; Parse rejects empty streams.
func Tokenize(raw string) (string, error) {
	var buf strings.Builder
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if isToken(c) {
			buf.WriteByte(c)
			continue
		}
		if c == ' ' || c == '=' {
			continue
		}
		return "", fmt.Errorf("%w: '%c' (%d)", ErrInvalidInput, c, i)
	}
	return buf.String(), nil
}
