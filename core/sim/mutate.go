// core/sim/mutate.go
package sim

import (
	"bytes"
	"math"

	"golang.org/x/exp/rand"

	"lrsim/core/errmodel"
	"lrsim/core/seq"
)

// applyErrors walks frag k-mer by k-mer, sampling an outcome from the
// error model at each context and applying it, until the accumulated error
// count converges on the read's error budget (1-target identity) or the
// model stops proposing changes. Passes repeat over the working sequence
// because one pass may not carry enough natural error to reach a low
// target; a pass that applies nothing means the model is exhausted and the
// read is emitted best-effort.
func applyErrors(frag []byte, target float64, model errmodel.Model, rng *rand.Rand) ([]byte, int) {
	out := append([]byte(nil), frag...)
	budget := int(math.Round((1 - target) * float64(len(frag))))
	if budget <= 0 || len(frag) == 0 {
		return out, 0
	}
	k := model.K()
	errs := 0
	for pass := 0; pass < maxErrorPasses && errs < budget; pass++ {
		next := make([]byte, 0, len(out)+budget-errs)
		applied := 0
		i := 0
		for i < len(out) {
			if errs >= budget || i+k > len(out) {
				next = append(next, out[i:]...)
				break
			}
			kmer := out[i : i+k]
			alt := model.Propose(kmer, rng)
			if !bytes.Equal(alt, kmer) {
				d := seq.EditDistance(kmer, alt)
				if errs+d <= budget+1 {
					next = append(next, alt...)
					errs += d
					applied++
					i += k
					continue
				}
			}
			next = append(next, out[i])
			i++
		}
		out = next
		if applied == 0 {
			break
		}
	}
	return out, errs
}
