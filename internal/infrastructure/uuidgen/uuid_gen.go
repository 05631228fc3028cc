package uuidgen

import (
	"github.com/google/uuid"

	"github.com/PaulBilal/Edunova-School-System/internal/domain/contract"
)

// Generator produces random (version 4) UUID strings, used for request IDs.
type Generator struct{}

var _ contract.IUUIDGenerator = (*Generator)(nil)

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) NewUUID() string {
	return uuid.NewString()
}
