package utils

import (
	"encoding/base64"
	"math/rand"
	"time"
)

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateConfirmationCode creates an uppercase-alphanumeric one-time code.
func GenerateConfirmationCode(length int) string {
	if length <= 0 {
		length = 8
	}

	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))

	code := make([]byte, length)
	for i := range code {
		code[i] = codeAlphabet[rnd.Intn(len(codeAlphabet))]
	}

	return string(code)
}

// EncodeCode encodes a confirmation code for storage.
func EncodeCode(code string) string {
	return base64.StdEncoding.EncodeToString([]byte(code))
}

// DecodeCode reverses EncodeCode. Returns the empty string on malformed input.
func DecodeCode(encoded string) string {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return ""
	}
	return string(raw)
}
