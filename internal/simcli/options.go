// internal/simcli/options.go
package simcli

import (
	"errors"
	"flag"
	"fmt"

	"lrsim/core/sim"
	"lrsim/internal/cli"
	"lrsim/internal/version"
)

// Output formats
const (
	FormatFASTQ = "fastq"
	FormatJSONL = "jsonl"
)

// Options holds all flags of the simulate command.
type Options struct {
	// Input
	Reference string
	Quantity  cli.Quantity

	// Read lengths / identities
	FragLenMean   float64
	FragLenStdev  float64
	IdentityMean  float64
	IdentityMax   float64
	IdentityShape float64

	// Error model
	ErrorModel string

	// Artefacts. Junk/random/chimera arrive as percentages; adapter
	// rate and amount arrive as fractions in [0,1].
	StartAdapterRate   float64
	StartAdapterAmount float64
	EndAdapterRate     float64
	EndAdapterAmount   float64
	StartAdapterSeq    string
	EndAdapterSeq      string
	JunkReads          float64
	RandomReads        float64
	Chimeras           float64
	GlitchRate         float64
	GlitchSize         float64
	GlitchSkip         float64
	SmallPlasmidBias   bool

	// Run control
	Seed    int64
	Threads int
	Format  string
	Quiet   bool

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: generate simulated long reads from a reference

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

	fs.StringVar(&opt.Reference, "reference", "", "reference FASTA file ('-' for stdin) [*]")
	quantity := fs.String("quantity", "", "bases to output: absolute (250M) or depth (25x) [*]")

	length := fs.String("length", "10000,9000", "fragment length distribution: mean,stdev [10000,9000]")
	identity := fs.String("identity", "85,95,4", "read identity distribution: mean,max,shape [85,95,4]")

	fs.StringVar(&opt.ErrorModel, "error-model", "random", "error model: random | perfect | model file [random]")

	startAdapter := fs.String("start-adapter", "0.9,0.6", "start adapter: rate,amount fractions [0.9,0.6]")
	endAdapter := fs.String("end-adapter", "0.5,0.2", "end adapter: rate,amount fractions [0.5,0.2]")
	fs.StringVar(&opt.StartAdapterSeq, "start-adapter-seq", "AATGTACTTCGTTCAGTTACGTATTGCT", "start adapter sequence")
	fs.StringVar(&opt.EndAdapterSeq, "end-adapter-seq", "GCAATACGTAACTGAACGAAGT", "end adapter sequence")

	fs.Float64Var(&opt.JunkReads, "junk-reads", 1, "percentage of low-complexity junk reads [1]")
	fs.Float64Var(&opt.RandomReads, "random-reads", 1, "percentage of random-sequence reads [1]")
	fs.Float64Var(&opt.Chimeras, "chimeras", 1, "percentage chance of chimeric joins [1]")
	glitches := fs.String("glitches", "5000,50,50", "glitch parameters: rate,size,skip [5000,50,50]")
	fs.BoolVar(&opt.SmallPlasmidBias, "small-plasmid-bias", false, "under-sample circular references shorter than the fragment [false]")

	fs.Int64Var(&opt.Seed, "seed", 0, "random seed (0 = derive from time) [0]")
	fs.IntVar(&opt.Threads, "threads", 0, "number of worker threads (0 = all CPUs) [0]")
	fs.StringVar(&opt.Format, "format", FormatFASTQ, "output format: fastq | jsonl ["+FormatFASTQ+"]")
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
	if *quantity == "" {
		return opt, errors.New("--quantity is required")
	}
	q, err := cli.ParseQuantity(*quantity)
	if err != nil {
		return opt, err
	}
	opt.Quantity = q

	lv, err := cli.ParseFloats("length", *length, 2)
	if err != nil {
		return opt, err
	}
	opt.FragLenMean, opt.FragLenStdev = lv[0], lv[1]
	if opt.FragLenMean <= 100 {
		return opt, errors.New("--length mean must be > 100")
	}
	if opt.FragLenStdev < 0 {
		return opt, errors.New("--length stdev must be ≥ 0")
	}

	iv, err := cli.ParseFloats("identity", *identity, 3)
	if err != nil {
		return opt, err
	}
	opt.IdentityMean, opt.IdentityMax, opt.IdentityShape = iv[0], iv[1], iv[2]
	if opt.IdentityMean <= 50 || opt.IdentityMean > 100 {
		return opt, errors.New("--identity mean must be > 50 and ≤ 100")
	}
	if opt.IdentityMax > 100 {
		return opt, errors.New("--identity max must be ≤ 100")
	}
	if opt.IdentityMean > opt.IdentityMax {
		return opt, errors.New("--identity mean must be ≤ max")
	}
	if opt.IdentityShape <= 0 {
		return opt, errors.New("--identity shape must be > 0")
	}

	sa, err := cli.ParseFloats("start-adapter", *startAdapter, 2)
	if err != nil {
		return opt, err
	}
	opt.StartAdapterRate, opt.StartAdapterAmount = sa[0], sa[1]
	ea, err := cli.ParseFloats("end-adapter", *endAdapter, 2)
	if err != nil {
		return opt, err
	}
	opt.EndAdapterRate, opt.EndAdapterAmount = ea[0], ea[1]
	for _, v := range []float64{opt.StartAdapterRate, opt.StartAdapterAmount, opt.EndAdapterRate, opt.EndAdapterAmount} {
		if v < 0 || v > 1 {
			return opt, errors.New("adapter rates and amounts are fractions between 0 and 1")
		}
	}

	if opt.JunkReads < 0 || opt.JunkReads > 100 {
		return opt, errors.New("--junk-reads must be between 0 and 100")
	}
	if opt.RandomReads < 0 || opt.RandomReads > 100 {
		return opt, errors.New("--random-reads must be between 0 and 100")
	}
	if opt.JunkReads+opt.RandomReads > 100 {
		return opt, errors.New("--junk-reads plus --random-reads cannot exceed 100")
	}
	if opt.Chimeras < 0 || opt.Chimeras > 50 {
		return opt, errors.New("--chimeras must be between 0 and 50")
	}

	gv, err := cli.ParseFloats("glitches", *glitches, 3)
	if err != nil {
		return opt, err
	}
	opt.GlitchRate, opt.GlitchSize, opt.GlitchSkip = gv[0], gv[1], gv[2]
	if opt.GlitchRate < 0 || opt.GlitchSize < 0 || opt.GlitchSkip < 0 {
		return opt, errors.New("--glitches values must be ≥ 0")
	}

	if opt.Threads < 0 {
		return opt, errors.New("--threads must be ≥ 0")
	}
	if opt.Format != FormatFASTQ && opt.Format != FormatJSONL {
		return opt, fmt.Errorf("invalid --format %q", opt.Format)
	}
	return opt, nil
}

// Config converts the percentage-based flag values into the fractional
// simulator configuration.
func (o Options) Config() sim.Config {
	return sim.Config{
		FragLenMean:        o.FragLenMean,
		FragLenStdev:       o.FragLenStdev,
		IdentityMean:       o.IdentityMean / 100,
		IdentityMax:        o.IdentityMax / 100,
		IdentityShape:      o.IdentityShape,
		StartAdapterRate:   o.StartAdapterRate,
		StartAdapterAmount: o.StartAdapterAmount,
		EndAdapterRate:     o.EndAdapterRate,
		EndAdapterAmount:   o.EndAdapterAmount,
		StartAdapterSeq:    o.StartAdapterSeq,
		EndAdapterSeq:      o.EndAdapterSeq,
		JunkFrac:           o.JunkReads / 100,
		RandomFrac:         o.RandomReads / 100,
		ChimeraFrac:        o.Chimeras / 100,
		GlitchRate:         o.GlitchRate,
		GlitchSize:         o.GlitchSize,
		GlitchSkip:         o.GlitchSkip,
		SmallPlasmidBias:   o.SmallPlasmidBias,
	}
}
