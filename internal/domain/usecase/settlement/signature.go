package settlement

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// SignatureVerifier checks the authenticity of gateway callbacks. The
// expected signature is an HMAC-SHA256 over "orderId|paymentId" keyed with
// the gateway's shared secret; this is the only barrier between a forged
// callback and a credit grant.
type SignatureVerifier struct {
	secret []byte
}

// NewSignatureVerifier creates a verifier keyed with the gateway secret
func NewSignatureVerifier(secret string) *SignatureVerifier {
	return &SignatureVerifier{secret: []byte(secret)}
}

// Expected computes the hex-encoded signature for an order/payment pair
func (v *SignatureVerifier) Expected(orderID, paymentID string) string {
	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify reports whether the supplied signature matches byte-for-byte.
// Comparison is constant-time.
func (v *SignatureVerifier) Verify(orderID, paymentID, signature string) bool {
	expected := v.Expected(orderID, paymentID)
	return hmac.Equal([]byte(expected), []byte(signature))
}
