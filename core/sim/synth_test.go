// core/sim/synth_test.go
package sim

import (
	"bytes"
	"strings"
	"testing"

	"golang.org/x/exp/rand"

	"lrsim/core/errmodel"
	"lrsim/core/fasta"
)

func mustRefs(t *testing.T, recs []fasta.Record) *Refs {
	t.Helper()
	refs, err := NewRefs(recs)
	if err != nil {
		t.Fatalf("refs: %v", err)
	}
	return refs
}

func TestApplyErrorsPerfectIsNoop(t *testing.T) {
	frag := bytes.Repeat([]byte("ACGGTCAT"), 100)
	rng := rand.New(rand.NewSource(1))
	out, errs := applyErrors(frag, 0.85, errmodel.Perfect{}, rng)
	if !bytes.Equal(out, frag) {
		t.Fatal("perfect model must leave the sequence untouched")
	}
	if errs != 0 {
		t.Fatalf("perfect model reported %d errors", errs)
	}
}

func TestApplyErrorsHitsTarget(t *testing.T) {
	frag := bytes.Repeat([]byte("ACGGTCAT"), 500) // 4000 bases
	rng := rand.New(rand.NewSource(2))
	target := 0.9
	out, errs := applyErrors(frag, target, errmodel.Random{Rate: 0.25}, rng)

	budget := int((1 - target) * float64(len(frag)))
	if errs < budget-1 || errs > budget+1 {
		t.Errorf("errors applied %d, want within 1 of budget %d", errs, budget)
	}
	if bytes.Equal(out, frag) {
		t.Error("expected a mutated sequence")
	}
	// Indels are bounded by the error budget.
	if len(out) < len(frag)-errs || len(out) > len(frag)+errs {
		t.Errorf("output length %d implausible for %d errors over %d bases", len(out), errs, len(frag))
	}
}

func TestApplyErrorsTargetOneIsNoop(t *testing.T) {
	frag := bytes.Repeat([]byte("ACGGTCAT"), 50)
	rng := rand.New(rand.NewSource(3))
	out, errs := applyErrors(frag, 1.0, errmodel.Random{Rate: 0.5}, rng)
	if !bytes.Equal(out, frag) || errs != 0 {
		t.Fatal("identity target 1.0 leaves no error budget")
	}
}

func TestApplyErrorsShortFragmentBestEffort(t *testing.T) {
	frag := []byte("ACG") // below the model's k
	rng := rand.New(rand.NewSource(4))
	out, errs := applyErrors(frag, 0.5, errmodel.Random{Rate: 1}, rng)
	if !bytes.Equal(out, frag) || errs != 0 {
		t.Fatal("fragment shorter than k has no contexts; emit as-is")
	}
}

func simConfig() Config {
	return Config{
		FragLenMean:   500,
		FragLenStdev:  0,
		IdentityMean:  0.9,
		IdentityMax:   0.95,
		IdentityShape: 4,
	}
}

func TestNextPlainRead(t *testing.T) {
	refs := mustRefs(t, linRef(10000))
	sy := NewSynthesizer(simConfig(), refs, errmodel.Perfect{}, 1)
	r, err := sy.Next()
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if r.ID == "" {
		t.Error("read needs an identifier")
	}
	if r.Chimera || r.Junk || r.RandomSeq || r.Glitches != 0 {
		t.Errorf("unexpected artifacts on a plain read: %+v", r)
	}
	if len(r.Seq) != 500 || r.ErrorFreeLen != 500 {
		t.Errorf("expected 500 clean bases, got %d/%d", len(r.Seq), r.ErrorFreeLen)
	}
	if r.Identity != 1 {
		t.Errorf("perfect model should give identity 1, got %v", r.Identity)
	}
	if len(r.Origin) != 1 || !strings.HasPrefix(r.Origin[0], "lin,") {
		t.Errorf("unexpected origin %v", r.Origin)
	}
}

func TestNextChimeras(t *testing.T) {
	refs := mustRefs(t, linRef(10000))
	cfg := simConfig()
	cfg.ChimeraFrac = 1.0
	sy := NewSynthesizer(cfg, refs, errmodel.Perfect{}, 2)
	for i := 0; i < 20; i++ {
		r, err := sy.Next()
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if !r.Chimera {
			t.Fatal("chimera rate 1.0 must tag every read chimeric")
		}
		if len(r.Origin) < 2 || len(r.Origin) > maxSegments {
			t.Fatalf("segment count %d outside [2,%d]", len(r.Origin), maxSegments)
		}
	}
}

func TestNextJunkAndRandom(t *testing.T) {
	refs := mustRefs(t, linRef(10000))

	cfg := simConfig()
	cfg.JunkFrac = 1.0
	sy := NewSynthesizer(cfg, refs, errmodel.Random{Rate: 0.25}, 3)
	r, err := sy.Next()
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if !r.Junk || r.Origin[0] != "junk_seq" {
		t.Errorf("expected junk read, got %+v", r.Origin)
	}
	if r.Identity != 1 {
		t.Error("junk reads bypass the error model")
	}

	cfg = simConfig()
	cfg.RandomFrac = 1.0
	sy = NewSynthesizer(cfg, refs, errmodel.Random{Rate: 0.25}, 4)
	r, err = sy.Next()
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if !r.RandomSeq || r.Origin[0] != "random_seq" {
		t.Errorf("expected random read, got %+v", r.Origin)
	}
	if len(r.Seq) != 500 {
		t.Errorf("random read length %d, want 500", len(r.Seq))
	}
}

func TestNextIdentityWithinBounds(t *testing.T) {
	refs := mustRefs(t, linRef(10000))
	sy := NewSynthesizer(simConfig(), refs, errmodel.Random{Rate: 0.25}, 5)
	for i := 0; i < 50; i++ {
		r, err := sy.Next()
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if r.Identity < minIdentity || r.Identity > 0.96 {
			t.Fatalf("achieved identity %.4f outside [%.2f, ~0.95]", r.Identity, minIdentity)
		}
	}
}

func TestNextAdaptersFull(t *testing.T) {
	refs := mustRefs(t, linRef(10000))
	cfg := simConfig()
	cfg.StartAdapterRate, cfg.StartAdapterAmount = 1, 1
	cfg.EndAdapterRate, cfg.EndAdapterAmount = 1, 1
	cfg.StartAdapterSeq = "AATGTACTTCGTTCAGTTACGTATTGCT"
	cfg.EndAdapterSeq = "GCAATACGTAACTGAACGAAGT"
	sy := NewSynthesizer(cfg, refs, errmodel.Perfect{}, 6)
	r, err := sy.Next()
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if !bytes.HasPrefix(r.Seq, []byte(cfg.StartAdapterSeq)) {
		t.Error("expected full start adapter prefix")
	}
	if !bytes.HasSuffix(r.Seq, []byte(cfg.EndAdapterSeq)) {
		t.Error("expected full end adapter suffix")
	}
	if len(r.Seq) != 500+len(cfg.StartAdapterSeq)+len(cfg.EndAdapterSeq) {
		t.Errorf("length %d with adapters, want %d", len(r.Seq), 500+len(cfg.StartAdapterSeq)+len(cfg.EndAdapterSeq))
	}
}

func TestGlitchRateZeroNeverGlitches(t *testing.T) {
	s := NewSampler(simConfig(), 7) // GlitchRate 0
	read := bytes.Repeat([]byte("ACGT"), 100000)
	out, n := addGlitches(s, read)
	if n != 0 || !bytes.Equal(out, read) {
		t.Fatal("glitch rate 0 must disable the mechanism entirely")
	}
}

func TestGlitchesApplied(t *testing.T) {
	cfg := simConfig()
	cfg.GlitchRate, cfg.GlitchSize, cfg.GlitchSkip = 100, 10, 10
	s := NewSampler(cfg, 8)
	read := bytes.Repeat([]byte("ACGGTCAT"), 500)
	out, n := addGlitches(s, read)
	if n == 0 {
		t.Fatal("expected glitch events at rate 100 over 4000 bases")
	}
	if bytes.Equal(out, read) {
		t.Error("glitches should change the sequence")
	}
}
