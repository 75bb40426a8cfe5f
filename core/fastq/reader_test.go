// core/fastq/reader_test.go
package fastq

import (
	"os"
	"path/filepath"
	"testing"
)

func write(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestForEach(t *testing.T) {
	fq := write(t, "in.fastq", "@r1 extra stuff\nacgt\n+\nIIII\n@r2\nTT\n+\n##\n")

	var ids []string
	var seqs []string
	err := ForEach(fq, func(rec Record) error {
		ids = append(ids, rec.ID)
		seqs = append(seqs, string(rec.Seq))
		return nil
	})
	if err != nil {
		t.Fatalf("foreach: %v", err)
	}
	if len(ids) != 2 || ids[0] != "r1" || ids[1] != "r2" {
		t.Fatalf("unexpected ids: %v", ids)
	}
	if seqs[0] != "ACGT" {
		t.Errorf("expected upper-cased sequence, got %q", seqs[0])
	}
}

func TestForEachTruncated(t *testing.T) {
	fq := write(t, "bad.fastq", "@r1\nACGT\n+\n")
	if err := ForEach(fq, func(Record) error { return nil }); err == nil {
		t.Fatal("expected error for truncated record")
	}
}

func TestForEachQualityMismatch(t *testing.T) {
	fq := write(t, "bad2.fastq", "@r1\nACGT\n+\nII\n")
	if err := ForEach(fq, func(Record) error { return nil }); err == nil {
		t.Fatal("expected error for quality length mismatch")
	}
}

func TestLoadMap(t *testing.T) {
	fq := write(t, "m.fastq", "@a\nAC\n+\nII\n@b\nGT\n+\nII\n")
	m, err := LoadMap(fq)
	if err != nil {
		t.Fatalf("loadmap: %v", err)
	}
	if string(m["a"]) != "AC" || string(m["b"]) != "GT" {
		t.Fatalf("unexpected map: %v", m)
	}
}
