// internal/output/tsv.go
package output

import (
	"bufio"
	"fmt"
	"io"

	"lrsim/core/paf"
)

// WindowRow is one sliding-window identity measurement for one read.
type WindowRow struct {
	Read   string
	Window paf.Window
}

// StartWindowTSVWriter streams per-window identities as TSV with a
// header line.
func StartWindowTSVWriter(out io.Writer, bufSize int) (chan<- WindowRow, <-chan error) {
	wroteHeader := false
	return Start(out, bufSize, func(bw *bufio.Writer, row WindowRow) error {
		if !wroteHeader {
			if _, err := bw.WriteString("read\toffset\tidentity\n"); err != nil {
				return err
			}
			wroteHeader = true
		}
		_, err := fmt.Fprintf(bw, "%s\t%d\t%.4f\n", row.Read, row.Window.Offset, row.Window.Identity)
		return err
	})
}
