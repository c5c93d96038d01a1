package utils

import "github.com/google/uuid"

// IDGenerator issues document identifiers.
type IDGenerator interface {
	Generate() string
}

// UUIDGenerator issues version 7 UUIDs, which sort by creation time, so
// documents listed in identifier order come out oldest first.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a new identifier. It falls back to a random v4 UUID when
// the v7 clock sequence cannot be read.
func (g *UUIDGenerator) Generate() string {
	if v7, err := uuid.NewV7(); err == nil {
		return v7.String()
	}
	return uuid.NewString()
}
