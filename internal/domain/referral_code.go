package domain

import (
	"crypto/rand"
	"encoding/base64"
)

// NewReferralCode returns a random URL-safe invite code (8 random bytes,
// same shape as the codes issued by the legacy system).
func NewReferralCode() (string, error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
