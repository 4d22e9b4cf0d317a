package utils

import "github.com/google/uuid"

// UUIDGenerator issues ids for sets, cards, folders, users and queue
// entries. Ids are UUIDv7 so they sort by creation time.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (*UUIDGenerator) Generate() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	// random ids still work, only the ordering is lost
	return uuid.NewString()
}
