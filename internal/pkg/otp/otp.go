package otp

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
)

const codeSpace = 1000000

// Generate returns a zero-padded 6-digit one-time code.
func Generate() (string, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	n := binary.BigEndian.Uint64(buf[:]) % codeSpace
	return fmt.Sprintf("%06d", n), nil
}
