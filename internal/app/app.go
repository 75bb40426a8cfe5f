// internal/app/app.go
package app

import (
	"context"
	"fmt"
	"io"

	"lrsim/internal/modelapp"
	"lrsim/internal/plotapp"
	"lrsim/internal/simapp"
	"lrsim/internal/version"
)

func usage(w io.Writer) {
	fmt.Fprintf(w, `lrsim: long-read sequencing simulator

Version: %s

Usage:
  lrsim simulate --reference ref.fasta --quantity 250M [options] > reads.fastq
  lrsim model    --reference ref.fasta --reads reads.fastq --alignment aln.paf > model
  lrsim plot     --alignment aln.paf > windows.tsv

Run 'lrsim <command> -h' for command options.
`, version.Version)
}

// RunContext dispatches to one of the subcommands.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	if len(argv) == 0 {
		usage(stdout)
		return 0
	}
	switch argv[0] {
	case "simulate":
		return simapp.Run(ctx, argv[1:], stdout, stderr)
	case "model":
		return modelapp.Run(ctx, argv[1:], stdout, stderr)
	case "plot":
		return plotapp.Run(ctx, argv[1:], stdout, stderr)
	case "-h", "--help", "help":
		usage(stdout)
		return 0
	case "-v", "--version", "version":
		fmt.Fprintf(stdout, "lrsim version %s\n", version.Version)
		return 0
	default:
		fmt.Fprintf(stderr, "unknown command %q\n", argv[0])
		usage(stderr)
		return 2
	}
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
