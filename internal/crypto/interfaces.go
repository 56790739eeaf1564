package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/sealer_mock.go -package=mock

// Sealer protects small values stored on the local disk (the access token and
// cached user data). It knows nothing about the network or the database.
//
// Blob layout produced by Seal and expected by Open:
//
//	nonce (24 bytes) || ciphertext || tag (16 bytes)
type Sealer interface {
	// Seal encrypts plaintext with a fresh random nonce.
	Seal(plaintext []byte) ([]byte, error)

	// Open decrypts a blob produced by Seal. It returns ErrOpenFailed when
	// the blob is truncated, corrupted, or was sealed under another secret.
	Open(blob []byte) ([]byte, error)
}
