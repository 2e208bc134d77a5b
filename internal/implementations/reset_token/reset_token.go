package resettoken

import (
	"authsvc/internal/core/domain/user"
	"crypto/rand"
	"encoding/hex"
)

const tokenByteLen = 32

// Generator produces reset tokens from crypto/rand: 32 bytes of entropy,
// hex-encoded. The token carries no user data and is not derivable from it.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) GenerateResetToken() (user.ResetToken, error) {
	b := make([]byte, tokenByteLen)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return user.ResetToken(hex.EncodeToString(b)), nil
}
