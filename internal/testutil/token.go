// Package testutil holds small deterministic stand-ins for the module's
// test suites.
package testutil

// FixedGenerator generates the same run token every time.
//
// This enables deterministic test execution and golden snapshot
// comparison: the same computation with the same FixedGenerator produces
// byte-identical catalog rows and fixtures.
//
// Thread-safety: FixedGenerator is stateless and safe for concurrent use.
type FixedGenerator struct {
	token string
}

// NewFixedGenerator creates a fixed run token generator. If token is
// empty, Generate returns "test-run-default".
func NewFixedGenerator(token string) *FixedGenerator {
	if token == "" {
		token = "test-run-default"
	}
	return &FixedGenerator{token: token}
}

// Generate returns the fixed run token.
//
// Implements lensing.RunTokenGenerator.
func (g *FixedGenerator) Generate() string {
	return g.token
}
