// core/errmodel/perfect.go
package errmodel

import "golang.org/x/exp/rand"

// Perfect never proposes an error.
type Perfect struct{}

func (Perfect) K() int { return DefaultK }

func (Perfect) Propose(kmer []byte, _ *rand.Rand) []byte { return kmer }
