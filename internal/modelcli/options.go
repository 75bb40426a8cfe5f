// internal/modelcli/options.go
package modelcli

import (
	"errors"
	"flag"
	"fmt"

	"lrsim/internal/version"
)

// Options holds all flags of the model command.
type Options struct {
	Reference string
	Reads     string
	Alignment string

	K             int
	MaxAlt        int
	MaxAlignments int

	Quiet bool

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: build a k-mer error model from read-to-reference alignments

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.Reference, "reference", "", "reference FASTA file [*]")
	fs.StringVar(&opt.Reads, "reads", "", "reads FASTQ file [*]")
	fs.StringVar(&opt.Alignment, "alignment", "", "PAF alignment file with cg:Z: tags [*]")

	fs.IntVar(&opt.K, "k-size", 7, "k-mer size [7]")
	fs.IntVar(&opt.MaxAlt, "max-alt", 25, "max alternatives stored per k-mer [25]")
	fs.IntVar(&opt.MaxAlignments, "max-alignments", 0, "stop after this many alignments (0 = no limit) [0]")

	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress progress and summary output [false]")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	// Validation
	if opt.Reference == "" {
		return opt, errors.New("--reference is required")
	}
	if opt.Reads == "" {
		return opt, errors.New("--reads is required")
	}
	if opt.Alignment == "" {
		return opt, errors.New("--alignment is required")
	}
	if opt.K < 1 || opt.K > 15 {
		return opt, errors.New("--k-size must be between 1 and 15")
	}
	if opt.K%2 == 0 {
		return opt, errors.New("--k-size must be odd")
	}
	if opt.MaxAlt < 1 {
		return opt, errors.New("--max-alt must be ≥ 1")
	}
	if opt.MaxAlignments < 0 {
		return opt, errors.New("--max-alignments must be ≥ 0")
	}
	return opt, nil
}
