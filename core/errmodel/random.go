// core/errmodel/random.go
package errmodel

import (
	"golang.org/x/exp/rand"

	"lrsim/core/seq"
)

// Random proposes context-free errors at a fixed uniform rate: with
// probability Rate the k-mer gets exactly one edit (substitution half the
// time, insertion or deletion a quarter each) at a uniform position.
type Random struct {
	Rate float64
}

func (Random) K() int { return DefaultK }

func (m Random) Propose(kmer []byte, rng *rand.Rand) []byte {
	if m.Rate <= 0 || rng.Float64() >= m.Rate {
		return kmer
	}
	pos := rng.Intn(len(kmer))
	alt := make([]byte, 0, len(kmer)+1)
	switch p := rng.Float64(); {
	case p < 0.5: // substitution
		alt = append(alt, kmer...)
		alt[pos] = seq.RandomBaseOther(rng, alt[pos])
	case p < 0.75: // insertion
		alt = append(alt, kmer[:pos]...)
		alt = append(alt, seq.Random(rng, 1)...)
		alt = append(alt, kmer[pos:]...)
	default: // deletion
		alt = append(alt, kmer[:pos]...)
		alt = append(alt, kmer[pos+1:]...)
	}
	return alt
}
