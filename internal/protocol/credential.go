package protocol

import (
	"crypto/sha1" //nolint:gosec // the service mandates SHA-1 for password digests
	"encoding/hex"
)

// passwordSalt is appended to every password before hashing. The server uses
// the same value, so it cannot change.
const passwordSalt = "JarJarBinks9"

// HashPassword returns the hex digest sent in place of the plaintext password
func HashPassword(password string) string {
	sum := sha1.Sum([]byte(password + passwordSalt)) //nolint:gosec
	return hex.EncodeToString(sum[:])
}
