// core/fastq/reader.go
package fastq

import (
	"bufio"
	"bytes"
	"fmt"

	"lrsim/core/fasta"
)

// Record is one FASTQ read. Quality is kept as raw ASCII; the error-model
// builder only needs the bases.
type Record struct {
	ID   string
	Seq  []byte
	Qual []byte
}

// ForEach streams FASTQ records from path (gzip-transparent, "-" for stdin)
// and calls fn for each. Parsing stops at the first structural error or the
// first non-nil fn error.
func ForEach(path string, fn func(Record) error) error {
	rc, err := fasta.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = rc.Close() }()

	sc := bufio.NewScanner(rc)
	const maxLine = 64 * 1024 * 1024
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	line := 0
	for sc.Scan() {
		line++
		hdr := bytes.TrimSpace(sc.Bytes())
		if len(hdr) == 0 {
			continue
		}
		if hdr[0] != '@' {
			return fmt.Errorf("%s:%d: expected '@' header, got %q", path, line, hdr)
		}
		id := string(hdr[1:])
		if i := bytes.IndexAny(hdr[1:], " \t"); i >= 0 {
			id = string(hdr[1 : 1+i])
		}

		var rec Record
		rec.ID = id
		for part := 0; part < 3; part++ {
			if !sc.Scan() {
				return fmt.Errorf("%s:%d: truncated record %q", path, line, id)
			}
			line++
			switch part {
			case 0:
				rec.Seq = append([]byte(nil), bytes.TrimSpace(sc.Bytes())...)
			case 1:
				if b := bytes.TrimSpace(sc.Bytes()); len(b) == 0 || b[0] != '+' {
					return fmt.Errorf("%s:%d: expected '+' separator in record %q", path, line, id)
				}
			case 2:
				rec.Qual = append([]byte(nil), bytes.TrimSpace(sc.Bytes())...)
			}
		}
		if len(rec.Qual) != len(rec.Seq) {
			return fmt.Errorf("%s:%d: record %q quality/sequence length mismatch", path, line, id)
		}
		upper(rec.Seq)
		if err := fn(rec); err != nil {
			return err
		}
	}
	return sc.Err()
}

// LoadMap reads all records into an id-keyed map of sequences.
func LoadMap(path string) (map[string][]byte, error) {
	m := make(map[string][]byte)
	err := ForEach(path, func(rec Record) error {
		m[rec.ID] = rec.Seq
		return nil
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

func upper(seq []byte) {
	for i, b := range seq {
		if b >= 'a' && b <= 'z' {
			seq[i] = b - 'a' + 'A'
		}
	}
}
