// internal/plotapp/app.go
package plotapp

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"lrsim/core/paf"
	"lrsim/internal/output"
	"lrsim/internal/plotcli"
	"lrsim/internal/version"
)

// errWriterClosed aborts the scan once the output writer goroutine has
// exited; whether that counts as failure is decided by the writer's own
// error.
var errWriterClosed = errors.New("output writer closed")

// Run executes the plot command: sliding-window identities per aligned
// read, written to stdout as TSV for downstream plotting.
func Run(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := plotcli.NewFlagSet("lrsim plot")
	fs.SetOutput(io.Discard)

	opts, err := plotcli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(stdout)
			fs.Usage()
			return 0
		}
		fmt.Fprintln(stderr, err)
		fs.SetOutput(stderr)
		fs.Usage()
		return 2
	}
	if opts.Version {
		fmt.Fprintf(stdout, "lrsim version %s\n", version.Version)
		return 0
	}

	sink, done := output.StartWindowTSVWriter(stdout, 64)
	writerDone := make(chan struct{})
	var werr error
	go func() {
		werr = <-done
		close(writerDone)
	}()
	err = paf.ForEach(opts.Alignment, func(rec paf.Record) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		windows, err := paf.WindowIdentities(rec, opts.Window)
		if err != nil {
			fmt.Fprintf(stderr, "warning: %s: %v\n", rec.QueryName, err)
			return nil
		}
		for _, w := range windows {
			select {
			case sink <- output.WindowRow{Read: rec.QueryName, Window: w}:
			case <-writerDone:
				return errWriterClosed
			}
		}
		return nil
	}, func(line string, err error) {
		fmt.Fprintf(stderr, "warning: skipping malformed line: %v\n", err)
	})
	close(sink)
	<-writerDone

	if err != nil && !errors.Is(err, errWriterClosed) {
		if errors.Is(err, context.Canceled) {
			return 130
		}
		fmt.Fprintln(stderr, err)
		return 3
	}
	if werr != nil && !output.IsBrokenPipe(werr) {
		fmt.Fprintln(stderr, werr)
		return 3
	}
	return 0
}
