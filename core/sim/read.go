// core/sim/read.go
package sim

import (
	"fmt"
	"math"
	"strings"
)

// Read is one synthesized read, terminal once emitted.
type Read struct {
	ID     string
	Seq    []byte
	Origin []string // one source description per joined segment

	Chimera   bool
	Junk      bool // any low-complexity segment
	RandomSeq bool // any uniform-random segment
	Glitches  int

	// Identity achieved against the source fragments; ErrorFreeLen is the
	// pre-error base count.
	Identity     float64
	ErrorFreeLen int
}

// Description renders the FASTQ header comment: source list plus length,
// identity and problem markers.
func (r *Read) Description() string {
	parts := []string{strings.Join(r.Origin, " ")}
	parts = append(parts, fmt.Sprintf("length=%d", len(r.Seq)))
	parts = append(parts, fmt.Sprintf("error-free_length=%d", r.ErrorFreeLen))
	parts = append(parts, fmt.Sprintf("read_identity=%.2f%%", r.Identity*100))
	if r.Glitches > 0 {
		parts = append(parts, fmt.Sprintf("glitches=%d", r.Glitches))
	}
	return strings.Join(parts, " ")
}

// QualChar is the constant per-base quality for the read, a Phred score
// derived from the achieved identity. Full q-score modeling is out of
// scope; this keeps FASTQ consumers happy and roughly honest.
func (r *Read) QualChar() byte {
	p := 1 - r.Identity
	q := 40.0
	if p > 0 {
		q = -10 * math.Log10(p)
	}
	if q < 2 {
		q = 2
	}
	if q > 40 {
		q = 40
	}
	return byte('!' + int(q))
}
