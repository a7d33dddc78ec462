// Package codec implements the reversible obfuscation applied to credentials
// before they are written to a cookie. Neither variant is cryptography: the
// XOR codec is a casual scrambling step and the digest codec stores the
// plaintext base64-wrapped behind a hash prefix. They exist to keep tokens
// out of casual view, nothing more.
package codec

type Codec interface {
	// Encode obfuscates plaintext for storage. An empty input encodes to "".
	Encode(plaintext string) string
	// Decode reverses Encode. Malformed input decodes to "" rather than
	// failing: a corrupted cookie must read as "absent", never as an error.
	Decode(ciphertext string) string
}
