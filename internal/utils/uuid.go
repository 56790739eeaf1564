package utils

import "github.com/google/uuid"

// UUIDGenerator hands out X-Request-ID values. Ids are UUIDv7, so the log
// lines of one client sort by time.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a new request id. It falls back to a random UUIDv4 if
// the v7 clock sequence cannot be produced.
func (UUIDGenerator) Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// ValidRequestID reports whether id is a UUID in canonical form and can be
// trusted as a log correlation key.
func ValidRequestID(id string) bool {
	if len(id) != 36 {
		return false
	}
	return uuid.Validate(id) == nil
}
