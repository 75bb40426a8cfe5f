// core/errmodel/kmer.go
package errmodel

import (
	"golang.org/x/exp/rand"
)

// alternative is one observed read-side outcome for a reference k-mer.
// Seq may equal the k-mer (a clean match) or differ by substitutions and
// short indels; Count is the number of observations.
type alternative struct {
	Seq   string
	Count uint32
}

// KmerModel is the trained error model: a table from packed reference
// k-mers to their observed alternatives, capped at MaxAlt entries each.
type KmerModel struct {
	k      int
	maxAlt int
	table  map[uint32][]alternative
}

// NewKmerModel returns an empty trained model; the Builder fills it.
func NewKmerModel(k, maxAlt int) *KmerModel {
	if k <= 0 {
		k = DefaultK
	}
	if maxAlt <= 0 {
		maxAlt = 25
	}
	return &KmerModel{k: k, maxAlt: maxAlt, table: make(map[uint32][]alternative)}
}

func (m *KmerModel) K() int { return m.k }

// MaxAlt is the per-context cap on retained alternatives.
func (m *KmerModel) MaxAlt() int { return m.maxAlt }

// Contexts reports how many k-mer contexts have observations.
func (m *KmerModel) Contexts() int { return len(m.table) }

// Propose samples one alternative weighted by observation count. A context
// that was never observed falls back to a clean match.
func (m *KmerModel) Propose(kmer []byte, rng *rand.Rand) []byte {
	key, ok := PackKmer(kmer)
	if !ok {
		return kmer
	}
	alts := m.table[key]
	if len(alts) == 0 {
		return kmer
	}
	var total int64
	for _, a := range alts {
		total += int64(a.Count)
	}
	n := rng.Int63n(total)
	for _, a := range alts {
		n -= int64(a.Count)
		if n < 0 {
			return []byte(a.Seq)
		}
	}
	return kmer
}

// add records one observation of alt for the packed k-mer key. When the
// alternative cap is exceeded the lowest-count entry goes, keeping the
// first-seen entry on ties so rebuilds stay bit-for-bit identical.
func (m *KmerModel) add(key uint32, alt string) {
	alts := m.table[key]
	for i := range alts {
		if alts[i].Seq == alt {
			alts[i].Count++
			return
		}
	}
	alts = append(alts, alternative{Seq: alt, Count: 1})
	if len(alts) > m.maxAlt {
		evict := 0
		for i := 1; i < len(alts); i++ {
			if alts[i].Count <= alts[evict].Count {
				evict = i
			}
		}
		alts = append(alts[:evict], alts[evict+1:]...)
	}
	m.table[key] = alts
}

// PackKmer encodes an ACGT k-mer into two bits per base. It reports false
// for any other symbol, which callers treat as an unobserved context.
func PackKmer(kmer []byte) (uint32, bool) {
	if len(kmer) == 0 || len(kmer) > 16 {
		return 0, false
	}
	var v uint32
	for _, b := range kmer {
		v <<= 2
		switch b {
		case 'A':
		case 'C':
			v |= 1
		case 'G':
			v |= 2
		case 'T':
			v |= 3
		default:
			return 0, false
		}
	}
	return v, true
}

// UnpackKmer decodes a packed k-mer of length k.
func UnpackKmer(v uint32, k int) []byte {
	out := make([]byte, k)
	for i := k - 1; i >= 0; i-- {
		out[i] = "ACGT"[v&3]
		v >>= 2
	}
	return out
}
