package codec

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"strings"
)

// Digest is the server-tier codec. It stores
//
//	base64(hex(sha256(plaintext+secret)) + ":" + plaintext)
//
// which means the plaintext itself is only base64-wrapped; the digest prefix
// is never verified on decode. This is a known weakness carried over
// deliberately from the original scheme so that existing cookies stay
// readable. Do not mistake it for encryption.
type Digest struct {
	secret string
}

func NewDigest(secret string) *Digest {
	return &Digest{secret: secret}
}

func (d *Digest) Encode(plaintext string) string {
	if plaintext == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(plaintext + d.secret))
	payload := hex.EncodeToString(sum[:]) + ":" + plaintext
	return base64.StdEncoding.EncodeToString([]byte(payload))
}

func (d *Digest) Decode(ciphertext string) string {
	if ciphertext == "" {
		return ""
	}
	decoded, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return ""
	}
	_, plaintext, ok := strings.Cut(string(decoded), ":")
	if !ok {
		return ""
	}
	return plaintext
}
