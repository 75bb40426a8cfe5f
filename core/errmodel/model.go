// core/errmodel/model.go
package errmodel

import (
	"fmt"
	"strings"

	"golang.org/x/exp/rand"
)

// Model proposes read-side alternatives for reference k-mers. Propose
// returns the observed alternative for the context, which is the k-mer
// itself when no error should be introduced. Implementations are immutable
// after construction and safe for concurrent use with per-caller rngs.
type Model interface {
	K() int
	Propose(kmer []byte, rng *rand.Rand) []byte
}

// DefaultK is the context size used when none is configured.
const DefaultK = 7

// DefaultRandomRate is the per-context error probability of the built-in
// "random" model. It is deliberately higher than typical identity targets
// need, so the identity-targeting walk is the binding constraint.
const DefaultRandomRate = 0.25

// New resolves an error model source: "random", "perfect", or a path to a
// serialized k-mer model.
func New(source string) (Model, error) {
	switch strings.ToLower(source) {
	case "random":
		return Random{Rate: DefaultRandomRate}, nil
	case "perfect":
		return Perfect{}, nil
	}
	m, err := LoadFile(source)
	if err != nil {
		return nil, fmt.Errorf("error model %s: %w", source, err)
	}
	return m, nil
}
