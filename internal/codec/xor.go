package codec

import "encoding/base64"

const keyLength = 32

// XOR is the client-tier codec: base64 the plaintext, XOR it against a fixed
// 32-byte keystream derived from a key source (the requesting browser's
// User-Agent), then base64 the result again so it is cookie-safe.
type XOR struct {
	key []byte
}

// NewXOR derives the keystream by folding every byte of the key source into
// the lowercase alphabet and repeating the fold until it covers 32 bytes.
func NewXOR(keySource string) *XOR {
	folded := make([]byte, 0, keyLength)
	for i := 0; i < len(keySource); i++ {
		folded = append(folded, keySource[i]%26+'a')
	}
	if len(folded) == 0 {
		folded = []byte{'a'}
	}

	key := make([]byte, keyLength)
	for i := range key {
		key[i] = folded[i%len(folded)]
	}
	return &XOR{key: key}
}

func (x *XOR) Encode(plaintext string) string {
	if plaintext == "" {
		return ""
	}
	b64 := base64.StdEncoding.EncodeToString([]byte(plaintext))

	mixed := make([]byte, len(b64))
	for i := 0; i < len(b64); i++ {
		mixed[i] = b64[i] ^ x.key[i%keyLength]
	}
	return base64.StdEncoding.EncodeToString(mixed)
}

func (x *XOR) Decode(ciphertext string) string {
	if ciphertext == "" {
		return ""
	}
	mixed, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return ""
	}

	b64 := make([]byte, len(mixed))
	for i := range mixed {
		b64[i] = mixed[i] ^ x.key[i%keyLength]
	}
	plaintext, err := base64.StdEncoding.DecodeString(string(b64))
	if err != nil {
		return ""
	}
	return string(plaintext)
}
