package booking

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
)

const confirmationCodeBytes = 4

// GenerateConfirmationCode returns 8 uppercase hex characters.
func GenerateConfirmationCode() (string, error) {
	b := make([]byte, confirmationCodeBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate confirmation code: %w", err)
	}
	return strings.ToUpper(hex.EncodeToString(b)), nil
}
