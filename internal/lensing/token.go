package lensing

import "github.com/google/uuid"

// RunTokenGenerator produces unique run tokens for log and catalog
// correlation. Implemented by UUIDv7Generator (production) and
// testutil.FixedGenerator (tests).
type RunTokenGenerator interface {
	Generate() string
}

// UUIDv7Generator generates time-ordered RFC 4122 UUIDv7 run tokens, so
// catalog listings sort by creation time without a separate clock column.
type UUIDv7Generator struct{}

// Generate returns a new UUIDv7 string.
func (UUIDv7Generator) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}
