// core/paf/paf_test.go
package paf

import (
	"os"
	"path/filepath"
	"testing"
)

const goodLine = "read1\t100\t0\t100\t+\tref\t1000\t200\t299\t95\t100\t60\tcg:Z:50=1X30=1I18="

func TestParse(t *testing.T) {
	r, err := Parse(goodLine)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if r.QueryName != "read1" || r.TargetName != "ref" {
		t.Errorf("bad names: %+v", r)
	}
	if r.Strand != '+' || r.TargetStart != 200 || r.TargetEnd != 299 {
		t.Errorf("bad coords: %+v", r)
	}
	if r.Cigar != "50=1X30=1I18=" {
		t.Errorf("cigar tag not captured: %q", r.Cigar)
	}
}

func TestParseRejects(t *testing.T) {
	cases := []string{
		"too\tfew\tcolumns",
		"q\tx\t0\t10\t+\tt\t100\t0\t10\t10\t10\t60",                // non-numeric qlen
		"q\t10\t0\t10\t*\tt\t100\t0\t10\t10\t10\t60",               // bad strand
		"q\t10\t0\t10\t+\tt\t100\t90\t200\t10\t10\t60",             // target out of range
		"q\t10\t5\t2\t+\tt\t100\t0\t10\t10\t10\t60",                // inverted query range
	}
	for _, line := range cases {
		if _, err := Parse(line); err == nil {
			t.Errorf("expected parse error for %q", line)
		}
	}
}

func TestParseCigar(t *testing.T) {
	ops, err := ParseCigar("3=1X2I4D")
	if err != nil {
		t.Fatalf("parse cigar: %v", err)
	}
	want := []Op{{3, '='}, {1, 'X'}, {2, 'I'}, {4, 'D'}}
	if len(ops) != len(want) {
		t.Fatalf("got %d ops, want %d", len(ops), len(want))
	}
	for i := range want {
		if ops[i] != want[i] {
			t.Errorf("op %d = %+v, want %+v", i, ops[i], want[i])
		}
	}
	ref, query := Spans(ops)
	if ref != 8 || query != 6 {
		t.Errorf("spans = (%d,%d), want (8,6)", ref, query)
	}
}

func TestParseCigarRejects(t *testing.T) {
	for _, cg := range []string{"3S4=", "=", "12"} {
		if _, err := ParseCigar(cg); err == nil {
			t.Errorf("expected error for cigar %q", cg)
		}
	}
}

func TestForEachSkipsBadLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "aln.paf")
	data := goodLine + "\nnot a paf line\n" + goodLine + "\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	var kept, skipped int
	err := ForEach(path,
		func(Record) error { kept++; return nil },
		func(string, error) { skipped++ })
	if err != nil {
		t.Fatalf("foreach: %v", err)
	}
	if kept != 2 || skipped != 1 {
		t.Errorf("kept=%d skipped=%d, want 2/1", kept, skipped)
	}
}
