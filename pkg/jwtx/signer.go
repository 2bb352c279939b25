package jwtx

// Signer is our interface for anything that can sign session tokens.
type Signer interface {
	Alg() string
	Sign(Claims) (string, error)
}

// NewSignerHS256 creates an HS256 signer from a shared secret.
// Construction fails on an empty secret so a misconfigured process can
// refuse to start instead of issuing weakly-signed tokens.
func NewSignerHS256(secret []byte) (Signer, error) {
	return newHS256(secret)
}
