package utils

import "github.com/google/uuid"

// UUIDGenerator issues record keys. Version 7 keys are time ordered, which
// keeps primary key indexes append-mostly.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() uuid.UUID {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}

	return v7
}
