// core/sim/glitch.go
package sim

// addGlitches injects slippage artifacts into a sequenced read: at
// exponentially spaced events, recent bases get duplicated or upcoming
// bases dropped (size), and further bases are skipped without being copied
// (skip). Rate 0 disables the mechanism entirely.
func addGlitches(s *Sampler, read []byte) ([]byte, int) {
	if s.cfg.GlitchRate <= 0 {
		return read, 0
	}
	out := make([]byte, 0, len(read))
	count := 0
	i := 0
	for {
		gap := s.GlitchGap()
		if gap < 0 || i+gap >= len(read) {
			out = append(out, read[i:]...)
			break
		}
		out = append(out, read[i:i+gap]...)
		i += gap
		count++

		if n := s.GlitchSize(); n > 0 {
			if s.Chance(0.5) {
				// Duplicate the most recent bases.
				start := len(out) - n
				if start < 0 {
					start = 0
				}
				out = append(out, out[start:]...)
			} else {
				// Drop the upcoming bases.
				i += n
				if i > len(read) {
					i = len(read)
				}
			}
		}
		if n := s.GlitchSkip(); n > 0 {
			i += n
			if i > len(read) {
				i = len(read)
			}
		}
	}
	return out, count
}
