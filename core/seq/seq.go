// core/seq/seq.go
package seq

import (
	"golang.org/x/exp/rand"
)

var bases = [4]byte{'A', 'C', 'G', 'T'}

var complement [256]byte

func init() {
	for i := range complement {
		complement[i] = 'N'
	}
	complement['A'] = 'T'
	complement['C'] = 'G'
	complement['G'] = 'C'
	complement['T'] = 'A'
}

// RevComp returns the reverse complement of s.
func RevComp(s []byte) []byte {
	n := len(s)
	if n == 0 {
		return nil
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = complement[s[n-1-i]]
	}
	return out
}

// Random returns n uniform-random bases.
func Random(rng *rand.Rand, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = bases[rng.Intn(4)]
	}
	return out
}

// RandomBaseOther returns a random base different from b.
func RandomBaseOther(rng *rand.Rand, b byte) byte {
	for {
		c := bases[rng.Intn(4)]
		if c != b {
			return c
		}
	}
}

// LowComplexity returns n bases of junk sequence: a short random motif
// repeated, with one motif base re-randomized every couple of dozen copies
// so the repeat is imperfect like real low-complexity reads.
func LowComplexity(rng *rand.Rand, n int) []byte {
	if n <= 0 {
		return nil
	}
	motifLen := 1 + rng.Intn(3)
	motif := Random(rng, motifLen)
	out := make([]byte, 0, n)
	copies := 0
	for len(out) < n {
		out = append(out, motif...)
		copies++
		if copies%25 == 0 {
			motif[rng.Intn(motifLen)] = bases[rng.Intn(4)]
		}
	}
	return out[:n]
}
