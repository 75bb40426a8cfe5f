// internal/output/fastq.go
package output

import (
	"bufio"
	"bytes"
	"io"

	"lrsim/core/sim"
)

// StartFASTQWriter streams reads as four-line FASTQ records. Quality is
// the read's constant per-base score.
func StartFASTQWriter(out io.Writer, bufSize int) (chan<- sim.Read, <-chan error) {
	return Start(out, bufSize, writeFASTQ)
}

func writeFASTQ(bw *bufio.Writer, r sim.Read) error {
	if _, err := bw.WriteString("@" + r.ID + " " + r.Description() + "\n"); err != nil {
		return err
	}
	if _, err := bw.Write(r.Seq); err != nil {
		return err
	}
	if _, err := bw.WriteString("\n+\n"); err != nil {
		return err
	}
	if _, err := bw.Write(bytes.Repeat([]byte{r.QualChar()}, len(r.Seq))); err != nil {
		return err
	}
	return bw.WriteByte('\n')
}
