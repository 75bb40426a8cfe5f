// core/sim/synth.go
package sim

import (
	"fmt"

	"github.com/google/uuid"

	"lrsim/core/errmodel"
	"lrsim/core/seq"
)

// Synthesizer builds one read at a time: pick sources, sequence them
// through the error model, glitch, attach adapters, emit. It is not safe
// for concurrent use; the generation loop gives each worker its own.
type Synthesizer struct {
	cfg     Config
	refs    *Refs
	model   errmodel.Model
	sampler *Sampler
}

// NewSynthesizer wires a synthesizer over shared read-only refs and model.
func NewSynthesizer(cfg Config, refs *Refs, model errmodel.Model, seed uint64) *Synthesizer {
	return &Synthesizer{
		cfg:     cfg,
		refs:    refs,
		model:   model,
		sampler: NewSampler(cfg, seed),
	}
}

type segment struct {
	seq    []byte
	origin string
	junk   bool
	random bool
}

func (sy *Synthesizer) segment() (segment, error) {
	s := sy.sampler
	switch {
	case sy.cfg.JunkFrac > 0 && s.Chance(sy.cfg.JunkFrac):
		n := s.FragLength()
		return segment{seq: seq.LowComplexity(s.rng, n), origin: "junk_seq", junk: true}, nil
	case sy.cfg.RandomFrac > 0 && s.Chance(sy.cfg.RandomFrac/(1-sy.cfg.JunkFrac)):
		n := s.FragLength()
		return segment{seq: seq.Random(s.rng, n), origin: "random_seq", random: true}, nil
	}
	for try := 0; try < maxFragmentTries; try++ {
		frag, origin, err := sy.refs.Fragment(s)
		if err == nil {
			return segment{seq: frag, origin: origin}, nil
		}
	}
	return segment{}, fmt.Errorf("no feasible fragments after %d draws; --small-plasmid-bias excludes every reference at this fragment length", maxFragmentTries)
}

// Next synthesizes one read.
func (sy *Synthesizer) Next() (Read, error) {
	s := sy.sampler

	segs := make([]segment, 0, 1)
	first, err := sy.segment()
	if err != nil {
		return Read{}, err
	}
	segs = append(segs, first)
	for len(segs) < maxSegments && s.Chance(sy.cfg.ChimeraFrac) {
		seg, err := sy.segment()
		if err != nil {
			return Read{}, err
		}
		segs = append(segs, seg)
	}

	read := Read{ID: uuid.New().String(), Chimera: len(segs) > 1}
	target := s.TargetIdentity()

	var (
		bases   []byte
		errored int
		normal  bool
	)
	for _, seg := range segs {
		read.Origin = append(read.Origin, seg.origin)
		read.ErrorFreeLen += len(seg.seq)
		if seg.junk {
			read.Junk = true
		}
		if seg.random {
			read.RandomSeq = true
		}
		if seg.junk || seg.random {
			// Junk and random segments bypass the error model; they are
			// not sequenced off a reference.
			bases = append(bases, seg.seq...)
			continue
		}
		normal = true
		mutated, errs := applyErrors(seg.seq, target, sy.model, s.Rand())
		bases = append(bases, mutated...)
		errored += errs
	}

	if normal {
		bases, read.Glitches = addGlitches(s, bases)
	}

	if read.ErrorFreeLen > 0 {
		read.Identity = 1 - float64(errored)/float64(read.ErrorFreeLen)
		if read.Identity < 0 {
			read.Identity = 0
		}
	} else {
		read.Identity = 1
	}

	bases = sy.addAdapters(bases)
	read.Seq = bases
	return read, nil
}

func (sy *Synthesizer) addAdapters(bases []byte) []byte {
	s := sy.sampler
	start := sy.cfg.StartAdapterSeq
	if n := s.AdapterLen(sy.cfg.StartAdapterRate, sy.cfg.StartAdapterAmount, len(start)); n > 0 {
		// The start adapter keeps its 3' end, adjacent to the read.
		out := make([]byte, 0, n+len(bases))
		out = append(out, start[len(start)-n:]...)
		bases = append(out, bases...)
	}
	end := sy.cfg.EndAdapterSeq
	if n := s.AdapterLen(sy.cfg.EndAdapterRate, sy.cfg.EndAdapterAmount, len(end)); n > 0 {
		bases = append(bases, end[:n]...)
	}
	return bases
}
