// internal/output/jsonl.go
package output

import (
	"bufio"
	"encoding/json"
	"io"

	"lrsim/core/sim"
	"lrsim/pkg/api"
)

// ToReadV1 maps a simulated read onto the stable wire schema.
func ToReadV1(r sim.Read) api.ReadV1 {
	return api.ReadV1{
		ID:           r.ID,
		Seq:          string(r.Seq),
		Length:       len(r.Seq),
		Origin:       r.Origin,
		Identity:     r.Identity,
		ErrorFreeLen: r.ErrorFreeLen,
		Chimera:      r.Chimera,
		Junk:         r.Junk,
		RandomSeq:    r.RandomSeq,
		Glitches:     r.Glitches,
	}
}

// StartReadJSONLWriter streams reads as one ReadV1 JSON object per line.
func StartReadJSONLWriter(out io.Writer, bufSize int) (chan<- sim.Read, <-chan error) {
	return Start(out, bufSize, func(bw *bufio.Writer, r sim.Read) error {
		return json.NewEncoder(bw).Encode(ToReadV1(r))
	})
}
