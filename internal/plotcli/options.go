// internal/plotcli/options.go
package plotcli

import (
	"errors"
	"flag"
	"fmt"

	"lrsim/internal/version"
)

// Options holds all flags of the plot command.
type Options struct {
	Alignment string
	Window    int

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: sliding-window read identities from a PAF alignment, as TSV

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

	fs.StringVar(&opt.Alignment, "alignment", "", "PAF alignment file with cg:Z: tags [*]")
	fs.IntVar(&opt.Window, "window", 100, "sliding window size in read bases [100]")

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

	if opt.Alignment == "" {
		return opt, errors.New("--alignment is required")
	}
	if opt.Window < 1 {
		return opt, errors.New("--window must be ≥ 1")
	}
	return opt, nil
}
