// core/sim/fragment.go
package sim

import (
	"errors"
	"fmt"

	"lrsim/core/fasta"
	"lrsim/core/seq"
)

// Refs is the shared, read-only reference store for a run. Fragment sources
// are chosen with probability proportional to length x depth.
type Refs struct {
	recs    []fasta.Record
	weights []float64 // cumulative
	total   int64
}

// NewRefs validates and indexes the reference set.
func NewRefs(recs []fasta.Record) (*Refs, error) {
	r := &Refs{}
	sum := 0.0
	for i := range recs {
		if len(recs[i].Seq) == 0 {
			continue
		}
		r.recs = append(r.recs, recs[i])
		sum += float64(len(recs[i].Seq)) * recs[i].Depth
		r.weights = append(r.weights, sum)
		r.total += int64(len(recs[i].Seq))
	}
	if len(r.recs) == 0 {
		return nil, errors.New("reference contains no usable sequences")
	}
	return r, nil
}

// TotalLength is the summed reference length, the unit behind depth quotas.
func (r *Refs) TotalLength() int64 { return r.total }

func (r *Refs) pick(s *Sampler) *fasta.Record {
	x := s.rng.Float64() * r.weights[len(r.weights)-1]
	for i, w := range r.weights {
		if x < w {
			return &r.recs[i]
		}
	}
	return &r.recs[len(r.recs)-1]
}

// errNoFragment reports a draw rejected under small-plasmid bias.
var errNoFragment = errors.New("no feasible fragment")

// Fragment draws one reference fragment of roughly the sampled length:
// random start, random strand, clipped to the reference for linear
// sequences and wrapping around for circular ones. A circular reference
// shorter than the request is used whole unless SmallPlasmidBias is set,
// in which case the draw is rejected so small plasmids drop out at high
// fragment lengths.
func (r *Refs) Fragment(s *Sampler) ([]byte, string, error) {
	length := s.FragLength()
	rec := r.pick(s)
	n := len(rec.Seq)

	var frag []byte
	var start, end int
	switch {
	case rec.Circular && length > n:
		if s.cfg.SmallPlasmidBias {
			return nil, "", errNoFragment
		}
		// Whole plasmid from a random rotation.
		start = s.rng.Intn(n)
		end = start
		frag = append(frag, rec.Seq[start:]...)
		frag = append(frag, rec.Seq[:start]...)
	case rec.Circular:
		start = s.rng.Intn(n)
		end = (start + length) % n
		if start+length <= n {
			frag = append(frag, rec.Seq[start:start+length]...)
		} else {
			frag = append(frag, rec.Seq[start:]...)
			frag = append(frag, rec.Seq[:end]...)
		}
	default:
		if length >= n {
			start, end = 0, n
			frag = append(frag, rec.Seq...)
		} else {
			start = s.rng.Intn(n - length + 1)
			end = start + length
			frag = append(frag, rec.Seq[start:end]...)
		}
	}

	strand := "+strand"
	if s.Chance(0.5) {
		frag = seq.RevComp(frag)
		strand = "-strand"
	}
	return frag, fmt.Sprintf("%s,%s,%d-%d", rec.Name, strand, start, end), nil
}
