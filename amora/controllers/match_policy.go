package controllers

import (
	"math/rand/v2"

	"github.com/google/uuid"
)

// MatchPolicy decides whether a right swipe becomes a mutual match.
type MatchPolicy interface {
	IsMatch(userID int, personaID uuid.UUID) bool
}

// RandomMatchPolicy matches with fixed probability. A stand-in until the
// candidate side carries enough signal for a real compatibility check;
// the swipe orchestration never looks past the interface.
type RandomMatchPolicy struct {
	Threshold float64
}

func (p RandomMatchPolicy) IsMatch(userID int, personaID uuid.UUID) bool {
	return rand.Float64() < p.Threshold
}
