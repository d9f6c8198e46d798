package otp

import (
	"crypto/rand"
	"math/big"
	"regexp"
	"strconv"
)

// Codes are 6-digit so they can be typed on the machine keypad.
const (
	codeMin = 100000
	codeMax = 999999
)

var codePattern = regexp.MustCompile(`^[0-9]{6}$`)

// Generate returns a 6-digit code drawn uniformly from [100000, 999999].
func Generate() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeMax-codeMin+1))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(codeMin+n.Int64(), 10), nil
}

func IsWellFormed(code string) bool {
	return codePattern.MatchString(code)
}
