package utils

import (
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/bcrypt"
)

// SecretKeyLookup returns the deterministic digest used to locate a user
// row for a presented secret key. Verification still goes through bcrypt;
// this only narrows the candidate to one row.
func SecretKeyLookup(secretKey string) string {
	sum := sha256.Sum256([]byte(secretKey))
	return hex.EncodeToString(sum[:])
}

func HashSecretKey(secretKey string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secretKey), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func VerifySecretKey(hash, secretKey string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secretKey)) == nil
}
