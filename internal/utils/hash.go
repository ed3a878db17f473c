package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// hasherPool holds HMAC-SHA256 hashers keyed with the gateway hash key.
// It must be initialized with InitHasherPool before Hash is called.
var hasherPool sync.Pool

// InitHasherPool keys every pooled hasher with hashKey. Both ends of the
// gateway must use the same key.
func InitHasherPool(hashKey string) {
	hasherPool = sync.Pool{
		New: func() any {
			return hmac.New(sha256.New, []byte(hashKey))
		},
	}
}

// Hash returns the HMAC-SHA256 of data.
func Hash(data []byte) []byte {
	h := hasherPool.Get().(hash.Hash)
	defer hasherPool.Put(h)

	h.Reset()
	h.Write(data)
	return h.Sum(nil)
}

// Sign returns the hex HMAC-SHA256 of data, the value of the HashSHA256
// header.
func Sign(data []byte) string {
	return hex.EncodeToString(Hash(data))
}

// Verify reports whether signature is the hex HMAC-SHA256 of data. The
// comparison runs in constant time.
func Verify(data []byte, signature string) bool {
	sent, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	return hmac.Equal(sent, Hash(data))
}
