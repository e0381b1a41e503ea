package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword bcrypt-hashes an athlete's password at sign-up.  The cost
// comes from BCRYPT_COST so deployments can tune hashing time.
func HashPassword(plain string, cost int) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassword checks a login attempt against the stored hash in
// constant time; it reports only match or no match.
func VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
