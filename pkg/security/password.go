package security

import "golang.org/x/crypto/bcrypt"

// The portal checks every login against one demo credential, so the
// hash is computed once at startup and compared per attempt. There is
// no per-user password storage.
const demoHashCost = 12

func HashDemoPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), demoHashCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func CompareDemoPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
