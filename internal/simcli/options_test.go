package simcli

import (
	"flag"
	"io"
	"strings"
	"testing"
)

func parse(t *testing.T, argv ...string) (Options, error) {
	t.Helper()
	fs := NewFlagSet("simulate")
	fs.SetOutput(io.Discard)
	return ParseArgs(fs, argv)
}

func TestParseDefaults(t *testing.T) {
	opt, err := parse(t, "--reference", "ref.fasta", "--quantity", "50x")
	if err != nil {
		t.Fatal(err)
	}
	if opt.FragLenMean != 10000 || opt.FragLenStdev != 9000 {
		t.Errorf("length = %v,%v", opt.FragLenMean, opt.FragLenStdev)
	}
	if opt.IdentityMean != 85 || opt.IdentityMax != 95 || opt.IdentityShape != 4 {
		t.Errorf("identity = %v,%v,%v", opt.IdentityMean, opt.IdentityMax, opt.IdentityShape)
	}
	if opt.ErrorModel != "random" {
		t.Errorf("error model = %q", opt.ErrorModel)
	}
	if opt.Quantity.Depth != 50 {
		t.Errorf("quantity depth = %v", opt.Quantity.Depth)
	}
	if opt.StartAdapterRate != 0.9 || opt.StartAdapterAmount != 0.6 {
		t.Errorf("start adapter = %v,%v", opt.StartAdapterRate, opt.StartAdapterAmount)
	}
	if opt.EndAdapterRate != 0.5 || opt.EndAdapterAmount != 0.2 {
		t.Errorf("end adapter = %v,%v", opt.EndAdapterRate, opt.EndAdapterAmount)
	}
}

// Adapter rate and amount are fractions, as the original tool takes them;
// they must pass through to the config unscaled, and percentage-style
// values must be rejected rather than silently shrunk 100-fold.
func TestAdapterFractionsUnscaled(t *testing.T) {
	opt, err := parse(t, "--reference", "ref.fasta", "--quantity", "1000",
		"--start-adapter", "0.9,0.6", "--end-adapter", "0.5,0.2")
	if err != nil {
		t.Fatal(err)
	}
	cfg := opt.Config()
	if cfg.StartAdapterRate != 0.9 || cfg.StartAdapterAmount != 0.6 {
		t.Errorf("start adapter config = %v,%v, want 0.9,0.6",
			cfg.StartAdapterRate, cfg.StartAdapterAmount)
	}
	if cfg.EndAdapterRate != 0.5 || cfg.EndAdapterAmount != 0.2 {
		t.Errorf("end adapter config = %v,%v, want 0.5,0.2",
			cfg.EndAdapterRate, cfg.EndAdapterAmount)
	}
	if _, err := parse(t, "--reference", "ref.fasta", "--quantity", "1000",
		"--start-adapter", "90,60"); err == nil {
		t.Error("percentage-style adapter values must be rejected")
	}
}

func TestParseRequiredFlags(t *testing.T) {
	if _, err := parse(t, "--quantity", "250M"); err == nil {
		t.Error("want error without --reference")
	}
	if _, err := parse(t, "--reference", "ref.fasta"); err == nil {
		t.Error("want error without --quantity")
	}
}

func TestParseValidation(t *testing.T) {
	base := []string{"--reference", "ref.fasta", "--quantity", "250M"}
	cases := []struct {
		name string
		extra []string
		want string
	}{
		{"short mean length", []string{"--length", "90,10"}, "must be > 100"},
		{"negative stdev", []string{"--length", "5000,-1"}, "stdev"},
		{"low identity mean", []string{"--identity", "40,95,4"}, "identity mean"},
		{"mean above max", []string{"--identity", "96,95,4"}, "identity mean"},
		{"zero shape", []string{"--identity", "85,95,0"}, "shape"},
		{"chimeras too high", []string{"--chimeras", "60"}, "chimeras"},
		{"junk plus random", []string{"--junk-reads", "60", "--random-reads", "60"}, "cannot exceed 100"},
		{"adapter above 1", []string{"--end-adapter", "1.5,0.2"}, "between 0 and 1"},
		{"negative adapter", []string{"--start-adapter", "-0.1,0.6"}, "between 0 and 1"},
		{"negative glitch", []string{"--glitches", "-1,50,50"}, "glitches"},
		{"bad format", []string{"--format", "sam"}, "format"},
	}
	for _, c := range cases {
		_, err := parse(t, append(append([]string{}, base...), c.extra...)...)
		if err == nil {
			t.Errorf("%s: want error", c.name)
			continue
		}
		if !strings.Contains(err.Error(), c.want) {
			t.Errorf("%s: error %q does not mention %q", c.name, err, c.want)
		}
	}
}

func TestParseHelp(t *testing.T) {
	_, err := parse(t, "-h")
	if err != flag.ErrHelp {
		t.Fatalf("want flag.ErrHelp, got %v", err)
	}
}

func TestConfigConvertsPercentages(t *testing.T) {
	opt, err := parse(t, "--reference", "ref.fasta", "--quantity", "1000",
		"--identity", "90,98,5", "--junk-reads", "2", "--chimeras", "10")
	if err != nil {
		t.Fatal(err)
	}
	cfg := opt.Config()
	if cfg.IdentityMean != 0.90 || cfg.IdentityMax != 0.98 {
		t.Errorf("identity = %v,%v", cfg.IdentityMean, cfg.IdentityMax)
	}
	if cfg.IdentityShape != 5 {
		t.Errorf("shape = %v", cfg.IdentityShape)
	}
	if cfg.JunkFrac != 0.02 || cfg.ChimeraFrac != 0.10 {
		t.Errorf("fracs = %v,%v", cfg.JunkFrac, cfg.ChimeraFrac)
	}
	if cfg.GlitchRate != 5000 {
		t.Errorf("glitch rate = %v", cfg.GlitchRate)
	}
}
