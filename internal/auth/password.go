package auth

import "golang.org/x/crypto/bcrypt"

// PasswordHasher hashes plaintexts with bcrypt after appending a server-wide
// pepper. The same hasher is shared by every credentialed entity type.
type PasswordHasher struct {
	pepper string
	cost   int
}

func NewPasswordHasher(pepper string, cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{pepper: pepper, cost: cost}
}

func (h *PasswordHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password+h.pepper), h.cost)
	return string(bytes), err
}

// Verify compares a plaintext against its stored hash. The pepper is applied
// the same way as in Hash.
func (h *PasswordHasher) Verify(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password+h.pepper))
	return err == nil
}
