// core/fasta/reader_test.go
package fasta

import (
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadBasic(t *testing.T) {
	in := ">chr1 description here\nACGTacgt\nACGT\n>chr2\nTTTT\n"
	recs, err := Read(strings.NewReader(in))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if recs[0].Name != "chr1" || string(recs[0].Seq) != "ACGTACGTACGT" {
		t.Errorf("unexpected first record: %q %q", recs[0].Name, recs[0].Seq)
	}
	if recs[0].Circular || recs[0].Depth != 1.0 {
		t.Errorf("expected linear depth-1 defaults, got %+v", recs[0])
	}
}

func TestReadHeaderAttributes(t *testing.T) {
	in := ">plasmid circular=true depth=2.5\nACGT\n"
	recs, err := Read(strings.NewReader(in))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !recs[0].Circular {
		t.Error("expected circular=true to be honored")
	}
	if recs[0].Depth != 2.5 {
		t.Errorf("expected depth 2.5, got %v", recs[0].Depth)
	}
}

func TestReadRejectsHeaderlessData(t *testing.T) {
	if _, err := Read(strings.NewReader("ACGT\n")); err == nil {
		t.Fatal("expected error for sequence before header")
	}
}

func TestNormalizeAmbiguity(t *testing.T) {
	recs, err := Read(strings.NewReader(">s\nACNT\n"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	seq := recs[0].Seq
	for _, b := range seq {
		if b != 'A' && b != 'C' && b != 'G' && b != 'T' {
			t.Fatalf("non-ACGT base %q survived normalization", b)
		}
	}
	// Same input, same substitution.
	recs2, _ := Read(strings.NewReader(">s\nACNT\n"))
	if !bytes.Equal(seq, recs2[0].Seq) {
		t.Error("normalization not deterministic")
	}
}

func TestLoadGzip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ref.fa.gz")

	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	_, _ = gw.Write([]byte(">g\nACGTACGT\n"))
	_ = gw.Close()
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	recs, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(recs) != 1 || string(recs[0].Seq) != "ACGTACGT" {
		t.Fatalf("unexpected gzip load result: %+v", recs)
	}
}

func TestTotalLength(t *testing.T) {
	recs := []Record{{Seq: []byte("ACGT")}, {Seq: []byte("AA")}}
	if n := TotalLength(recs); n != 6 {
		t.Errorf("TotalLength = %d, want 6", n)
	}
}
