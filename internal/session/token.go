package session

import (
	"crypto/sha256"
	"encoding/hex"
	"math/rand"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Cookie names for the anonymous session token. The HTTP-only cookie is read
// server-side; the client cookie exposes the same value to front-end code.
const (
	CookieName       = "user_token"
	ClientCookieName = "user_token_client"
)

// TokenLength is the fixed length of generated tokens.
const TokenLength = 36

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// GenerateUserToken derives an anonymous correlation token from the request
// fingerprint. The token is not a credential: it only ties orders placed from
// the same browser together, and its uniqueness rests on the collision
// resistance of the hash.
func GenerateUserToken(userAgent, ip string) string {
	if userAgent == "" {
		userAgent = "unknown"
	}
	if ip == "" {
		ip = "unknown"
	}
	return UniqueRandom(userAgent+"-"+ip, TokenLength)
}

// UniqueRandom hashes the key together with a timestamp, random characters
// and a random UUID, then cuts or pads the hex digest to the requested
// length.
func UniqueRandom(key string, length int) string {
	timestamp := strconv.FormatInt(time.Now().UnixMilli(), 10)
	base := key + timestamp + randomChars(10) + uuid.NewString()

	sum := sha256.Sum256([]byte(base))
	digest := hex.EncodeToString(sum[:])

	if length <= len(digest) {
		return digest[:length]
	}
	return digest + randomChars(length-len(digest))
}

func randomChars(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = base36[rand.Intn(len(base36))]
	}
	return string(b)
}
