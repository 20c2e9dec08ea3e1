package outbound

// PasswordService hashes credentials one-way and verifies them against
// a stored hash.
type PasswordService interface {
	HashPassword(password string) (string, error)
	ComparePassword(hashedPassword, password string) error
}
