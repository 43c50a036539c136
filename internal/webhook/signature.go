package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// HeaderName is the signature header sent by the platform. Header lookup is
// case-insensitive, so the lowercase variant is accepted too.
const HeaderName = "Pachca-Signature"

// Sign returns the lowercase hex HMAC-SHA256 digest of body keyed by secret.
func Sign(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature checks the provided signature against the digest of the
// exact raw body. A missing or mismatched signature yields false, never an
// error. Comparison is constant-time.
func VerifySignature(body []byte, signature, secret string) bool {
	if signature == "" {
		return false
	}
	return hmac.Equal([]byte(Sign(body, secret)), []byte(signature))
}
