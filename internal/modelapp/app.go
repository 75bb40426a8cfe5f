// internal/modelapp/app.go
package modelapp

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/cheggaaa/pb/v3"

	"lrsim/core/errmodel"
	"lrsim/core/fasta"
	"lrsim/core/fastq"
	"lrsim/core/paf"
	"lrsim/internal/cmdutil"
	"lrsim/internal/modelcli"
	"lrsim/internal/version"
)

// Run executes the model command: walk the alignments against reference
// and reads, and write the k-mer error model to stdout.
func Run(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := modelcli.NewFlagSet("lrsim model")
	fs.SetOutput(io.Discard)

	opts, err := modelcli.ParseArgs(fs, argv)
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
	reads, err := fastq.LoadMap(opts.Reads)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	b := errmodel.NewBuilder(refs, reads, errmodel.BuildOptions{
		K:             opts.K,
		MaxAlt:        opts.MaxAlt,
		MaxAlignments: opts.MaxAlignments,
	})

	// A progress bar needs a known total; only --max-alignments gives one.
	var bar *pb.ProgressBar
	if !opts.Quiet && opts.MaxAlignments > 0 {
		bar = pb.New(opts.MaxAlignments)
		bar.SetWriter(stderr)
		bar.Start()
	}

	var badLines int
	err = paf.ForEach(opts.Alignment, func(rec paf.Record) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := b.Add(rec); err != nil {
			if errors.Is(err, errmodel.ErrFull) {
				return err
			}
			return nil
		}
		if bar != nil {
			bar.Increment()
		}
		return nil
	}, func(line string, err error) {
		badLines++
	})
	if bar != nil {
		bar.Finish()
	}
	if err != nil && !errors.Is(err, errmodel.ErrFull) {
		if errors.Is(err, context.Canceled) {
			return 130
		}
		fmt.Fprintln(stderr, err)
		return 3
	}

	m := b.Model()
	if m.Contexts() == 0 {
		cmdutil.Warnf(stderr, opts.Quiet, "no usable alignments; writing an empty model")
	}
	if err := m.Save(stdout); err != nil {
		fmt.Fprintln(stderr, err)
		return 3
	}

	st := b.Stats()
	cmdutil.Warnf(stderr, opts.Quiet, "%d alignments used, %d skipped, %d observations",
		st.AlignmentsUsed, st.AlignmentsSkipped+badLines, st.Observations)
	return 0
}
