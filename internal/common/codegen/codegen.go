package codegen

import (
	"math/rand"
	"strings"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_generator.go github.com/hysteriagg/muster/internal/common/codegen Generator

const (
	letters      = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	alphaNumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// Generator produces attendance codes for CTA windows
type Generator interface {
	// Generate returns a code of exactly length characters
	Generate(length int) string
}

// DefaultGenerator implements Generator with a seeded random source.
// Codes are not cryptographically secure; they are scoped to one channel
// and one time window and compared case-insensitively.
type DefaultGenerator struct {
	random *rand.Rand
}

// Config for the code generator
type Config struct {
	// Optional seed for testing
	Seed int64
}

// New creates a new code generator
func New(cfg *Config) *DefaultGenerator {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)
	random := rand.New(source)

	return &DefaultGenerator{
		random: random,
	}
}

// Generate returns a code of exactly length characters: leading uppercase
// letters with a single letter-or-digit final character
func (g *DefaultGenerator) Generate(length int) string {
	if length < 2 {
		length = 2
	}

	alphaCount := length - 1
	if alphaCount > 3 {
		alphaCount = 3
	}
	if alphaCount < 2 {
		alphaCount = 2
	}

	var code strings.Builder
	code.Grow(length)

	for i := 0; i < alphaCount; i++ {
		code.WriteByte(letters[g.random.Intn(len(letters))])
	}

	for code.Len() < length-1 {
		code.WriteByte(letters[g.random.Intn(len(letters))])
	}

	code.WriteByte(alphaNumeric[g.random.Intn(len(alphaNumeric))])

	return code.String()
}
