// Package cryptox hashes and verifies account PINs.
//
// PINs are never stored in clear: each account carries a random salt and an
// argon2id digest of the PIN under that salt.
package cryptox

import (
	"crypto/subtle"

	"github.com/opio/bpmonitor/internal/common"
	"golang.org/x/crypto/argon2"
)

const (
	SaltSize = 16
	HashSize = 32

	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
)

// DerivePINHash returns the argon2id digest of pin under salt.
func DerivePINHash(pin []byte, salt []byte) []byte {
	return argon2.IDKey(pin, salt, argonTime, argonMemory, argonThreads, HashSize)
}

// HashPIN generates a fresh salt and returns it together with the digest.
func HashPIN(pin string) (salt []byte, hash []byte) {
	salt = common.GenerateRandByteArray(SaltSize)
	return salt, DerivePINHash([]byte(pin), salt)
}

// VerifyPIN reports whether pin matches hash under salt, in constant time.
func VerifyPIN(pin string, salt, hash []byte) bool {
	if len(salt) == 0 || len(hash) == 0 {
		return false
	}
	candidate := DerivePINHash([]byte(pin), salt)
	return subtle.ConstantTimeCompare(candidate, hash) == 1
}
