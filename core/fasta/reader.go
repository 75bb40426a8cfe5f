// core/fasta/reader.go
package fasta

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Record is one reference sequence. Circular and Depth come from header
// attributes ("circular=true", "depth=2.5"); Depth defaults to 1 and scales
// how often the sequence is chosen as a fragment source.
type Record struct {
	Name     string
	Seq      []byte
	Circular bool
	Depth    float64
}

// Read parses FASTA from r. Sequences are upper-cased and non-ACGT symbols
// are replaced with a deterministic base so downstream sampling never sees
// ambiguity codes.
func Read(r io.Reader) ([]Record, error) {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	var (
		recs []Record
		cur  *Record
	)
	flush := func() {
		if cur != nil {
			cur.Seq = normalize(cur.Seq)
			recs = append(recs, *cur)
			cur = nil
		}
	}
	for sc.Scan() {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			flush()
			name, circular, depth := parseHeader(line[1:])
			if name == "" {
				return nil, fmt.Errorf("fasta: header with empty name")
			}
			cur = &Record{Name: name, Circular: circular, Depth: depth}
			continue
		}
		if cur == nil {
			return nil, fmt.Errorf("fasta: sequence data before first header")
		}
		cur.Seq = append(cur.Seq, line...)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("fasta scan: %w", err)
	}
	flush()
	return recs, nil
}

// Load reads all records from path (gzip-transparent, "-" for stdin).
func Load(path string) ([]Record, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	recs, err := Read(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return recs, nil
}

// TotalLength sums the sequence lengths of recs.
func TotalLength(recs []Record) int64 {
	var n int64
	for i := range recs {
		n += int64(len(recs[i].Seq))
	}
	return n
}

// parseHeader splits a FASTA header into the record name (first token) and
// the recognized key=value attributes.
func parseHeader(hdr []byte) (name string, circular bool, depth float64) {
	depth = 1.0
	fields := strings.Fields(string(hdr))
	if len(fields) == 0 {
		return "", false, depth
	}
	name = fields[0]
	for _, f := range fields[1:] {
		k, v, ok := strings.Cut(f, "=")
		if !ok {
			continue
		}
		switch strings.ToLower(k) {
		case "circular":
			circular = strings.EqualFold(v, "true")
		case "depth":
			if d, err := strconv.ParseFloat(v, 64); err == nil && d > 0 {
				depth = d
			}
		}
	}
	return name, circular, depth
}

func normalize(seq []byte) []byte {
	out := seq[:0]
	for i, b := range seq {
		switch b {
		case 'a':
			b = 'A'
		case 'c':
			b = 'C'
		case 'g':
			b = 'G'
		case 't':
			b = 'T'
		case 'A', 'C', 'G', 'T':
		default:
			// Ambiguity codes map to a fixed base by position so loads
			// stay deterministic.
			b = "ACGT"[i&3]
		}
		out = append(out, b)
	}
	return out
}
