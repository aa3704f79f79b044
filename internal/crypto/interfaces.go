package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns passwords into self-describing Argon2id hashes and
// checks passwords against them. It knows nothing about users or storage.
type PasswordHasher interface {
	// Hash derives a fresh-salted hash of password in PHC string format:
	// $argon2id$v=19$m=<KiB>,t=<iterations>,p=<threads>$<salt>$<key>
	Hash(password string) (string, error)

	// Verify reports whether password matches encoded. The parameters are
	// read from encoded, so hashes made with older settings still verify.
	// A malformed encoded value is an error, a mismatch is (false, nil).
	Verify(password, encoded string) (bool, error)
}
