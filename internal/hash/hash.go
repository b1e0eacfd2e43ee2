package hash

import "golang.org/x/crypto/bcrypt"

const cost = 10

// HashPassword produces a salted one-way digest of the password.
func HashPassword(password string) (string, error) {
	hashbytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashbytes), nil
}

// CheckPassword reports whether password matches the stored hash.
// A mismatch is a false return, never an error.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// HashUserData hashes sensitive user data strings the same way passwords
// are hashed, for at-rest storage outside the customer record.
func HashUserData(data string) (string, error) {
	hashbytes, err := bcrypt.GenerateFromPassword([]byte(data), cost)
	if err != nil {
		return "", err
	}
	return string(hashbytes), nil
}

func CompareUserData(hash, data string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(data)) == nil
}
