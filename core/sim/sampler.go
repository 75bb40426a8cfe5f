// core/sim/sampler.go
package sim

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Sampler draws the per-read random values for one worker. It owns its rng,
// so independent workers never contend or share state.
type Sampler struct {
	cfg Config
	rng *rand.Rand

	fragLen  distuv.Gamma
	identity distuv.Beta
}

// NewSampler builds a sampler for cfg seeded with seed.
func NewSampler(cfg Config, seed uint64) *Sampler {
	src := rand.NewSource(seed)
	s := &Sampler{cfg: cfg, rng: rand.New(src)}

	if cfg.FragLenStdev > 0 {
		variance := cfg.FragLenStdev * cfg.FragLenStdev
		s.fragLen = distuv.Gamma{
			Alpha: cfg.FragLenMean * cfg.FragLenMean / variance,
			Beta:  cfg.FragLenMean / variance,
			Src:   src,
		}
	}
	if cfg.IdentityMean < cfg.IdentityMax {
		mu := cfg.IdentityMean / cfg.IdentityMax
		s.identity = distuv.Beta{
			Alpha: cfg.IdentityShape * mu,
			Beta:  cfg.IdentityShape * (1 - mu),
			Src:   src,
		}
	}
	return s
}

// Rand exposes the sampler's generator for the error-model walk.
func (s *Sampler) Rand() *rand.Rand { return s.rng }

// Chance reports true with probability p.
func (s *Sampler) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	return s.rng.Float64() < p
}

// FragLength draws one fragment length, floored at the minimum viable
// length. Callers clip against the chosen reference.
func (s *Sampler) FragLength() int {
	length := s.cfg.FragLenMean
	if s.cfg.FragLenStdev > 0 {
		length = s.fragLen.Rand()
	}
	n := int(math.Round(length))
	if n < minFragLength {
		n = minFragLength
	}
	return n
}

// TargetIdentity draws one identity target in [minIdentity, IdentityMax].
func (s *Sampler) TargetIdentity() float64 {
	id := s.cfg.IdentityMean
	if s.cfg.IdentityMean < s.cfg.IdentityMax {
		id = s.identity.Rand() * s.cfg.IdentityMax
	}
	if id < minIdentity {
		id = minIdentity
	}
	if id > s.cfg.IdentityMax {
		id = s.cfg.IdentityMax
	}
	return id
}

// AdapterLen decides how much of an n-base adapter to attach: zero when the
// rate check fails, otherwise a beta-distributed fraction of n centered on
// amount (degenerate at 0 and 1).
func (s *Sampler) AdapterLen(rate, amount float64, n int) int {
	if n == 0 || !s.Chance(rate) {
		return 0
	}
	if amount <= 0 {
		return 0
	}
	if amount >= 1 {
		return n
	}
	frac := distuv.Beta{Alpha: 2 * amount, Beta: 2 * (1 - amount), Src: s.rng}.Rand()
	return int(math.Round(frac * float64(n)))
}

// GlitchGap draws the distance to the next glitch event, or -1 when
// glitches are disabled.
func (s *Sampler) GlitchGap() int {
	if s.cfg.GlitchRate <= 0 {
		return -1
	}
	return s.expInt(s.cfg.GlitchRate)
}

// GlitchSize draws the bases duplicated or dropped at one event.
func (s *Sampler) GlitchSize() int { return s.expInt(s.cfg.GlitchSize) }

// GlitchSkip draws the bases skipped over at one event.
func (s *Sampler) GlitchSkip() int { return s.expInt(s.cfg.GlitchSkip) }

func (s *Sampler) expInt(mean float64) int {
	if mean <= 0 {
		return 0
	}
	return int(math.Round(distuv.Exponential{Rate: 1 / mean, Src: s.rng}.Rand()))
}
