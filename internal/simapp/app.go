// internal/simapp/app.go
package simapp

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/cheggaaa/pb/v3"

	"lrsim/core/errmodel"
	"lrsim/core/fasta"
	"lrsim/core/sim"
	"lrsim/internal/cmdutil"
	"lrsim/internal/output"
	"lrsim/internal/simcli"
	"lrsim/internal/version"
)

// errWriterClosed aborts generation once the output writer goroutine has
// exited; whether that counts as failure is decided by the writer's own
// error.
var errWriterClosed = errors.New("output writer closed")

// Run executes the simulate command: load the reference, resolve the
// quota, and stream generated reads to stdout.
func Run(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := simcli.NewFlagSet("lrsim simulate")
	fs.SetOutput(io.Discard)

	opts, err := simcli.ParseArgs(fs, argv)
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

	refs, err := fasta.Load(opts.Reference)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	pool, err := sim.NewRefs(refs)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	model, err := errmodel.New(opts.ErrorModel)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	quota := opts.Quantity.Resolve(pool.TotalLength())
	if quota <= 0 {
		fmt.Fprintln(stderr, "error: resolved base quota is zero")
		return 2
	}

	seed := uint64(opts.Seed)
	if opts.Seed == 0 {
		seed = uint64(time.Now().UnixNano())
		cmdutil.Warnf(stderr, opts.Quiet, "using random seed %d", seed)
	}
	threads := opts.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	var sink chan<- sim.Read
	var done <-chan error
	switch opts.Format {
	case simcli.FormatJSONL:
		sink, done = output.StartReadJSONLWriter(stdout, 64)
	default:
		sink, done = output.StartFASTQWriter(stdout, 64)
	}
	// The writer goroutine can exit mid-stream (write error, or a broken
	// pipe once a downstream `head` closes); sends must never block on a
	// dead writer.
	writerDone := make(chan struct{})
	var werr error
	go func() {
		werr = <-done
		close(writerDone)
	}()

	var bar *pb.ProgressBar
	var progress func(int64)
	if !opts.Quiet {
		bar = pb.New64(quota)
		bar.SetWriter(stderr)
		bar.Start()
		progress = func(d int64) { bar.Add64(d) }
	}

	gen := &sim.Generator{
		Cfg:     opts.Config(),
		Refs:    pool,
		Model:   model,
		Seed:    seed,
		Threads: threads,
	}
	sum, runErr := gen.Run(ctx, quota, func(r sim.Read) error {
		select {
		case sink <- r:
			return nil
		case <-writerDone:
			return errWriterClosed
		}
	}, progress)
	close(sink)
	<-writerDone
	if bar != nil {
		bar.Finish()
	}

	if runErr != nil && !errors.Is(runErr, errWriterClosed) {
		if errors.Is(runErr, context.Canceled) {
			return 130
		}
		fmt.Fprintln(stderr, runErr)
		return 3
	}
	if werr != nil && !output.IsBrokenPipe(werr) {
		fmt.Fprintln(stderr, werr)
		return 3
	}

	cmdutil.Warnf(stderr, opts.Quiet, "%d reads, %d bases (mean identity %.2f%%)",
		sum.Reads, sum.Bases, sum.MeanIdentity()*100)
	return 0
}
