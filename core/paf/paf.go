// core/paf/paf.go
package paf

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"lrsim/core/fasta"
)

// Record is one PAF alignment line. Coordinates are 0-based half-open on
// the forward strand of each sequence; Strand '-' means the query aligns
// reverse-complemented.
type Record struct {
	QueryName   string
	QueryLen    int
	QueryStart  int
	QueryEnd    int
	Strand      byte
	TargetName  string
	TargetLen   int
	TargetStart int
	TargetEnd   int
	Matches     int
	AlignLen    int
	MapQ        int
	Cigar       string // from the cg:Z: tag; empty if absent
}

// Parse parses one PAF line.
func Parse(line string) (Record, error) {
	var r Record
	fields := strings.Split(line, "\t")
	if len(fields) < 12 {
		return r, fmt.Errorf("paf: %d columns, need 12", len(fields))
	}
	var err error
	geti := func(i int) int {
		if err != nil {
			return 0
		}
		var v int
		if v, err = strconv.Atoi(fields[i]); err != nil {
			err = fmt.Errorf("paf: column %d: %w", i+1, err)
		}
		return v
	}
	r.QueryName = fields[0]
	r.QueryLen = geti(1)
	r.QueryStart = geti(2)
	r.QueryEnd = geti(3)
	r.TargetName = fields[5]
	r.TargetLen = geti(6)
	r.TargetStart = geti(7)
	r.TargetEnd = geti(8)
	r.Matches = geti(9)
	r.AlignLen = geti(10)
	r.MapQ = geti(11)
	if err != nil {
		return r, err
	}
	if fields[4] != "+" && fields[4] != "-" {
		return r, fmt.Errorf("paf: bad strand %q", fields[4])
	}
	r.Strand = fields[4][0]
	for _, tag := range fields[12:] {
		if strings.HasPrefix(tag, "cg:Z:") {
			r.Cigar = tag[5:]
			break
		}
	}
	if r.QueryStart < 0 || r.QueryEnd > r.QueryLen || r.QueryStart > r.QueryEnd {
		return r, fmt.Errorf("paf: query range %d-%d outside 0-%d", r.QueryStart, r.QueryEnd, r.QueryLen)
	}
	if r.TargetStart < 0 || r.TargetEnd > r.TargetLen || r.TargetStart > r.TargetEnd {
		return r, fmt.Errorf("paf: target range %d-%d outside 0-%d", r.TargetStart, r.TargetEnd, r.TargetLen)
	}
	return r, nil
}

// ForEach streams records from path (gzip-transparent, "-" for stdin).
// Malformed lines are handed to bad (which may be nil) and skipped; the
// scan itself only fails on I/O errors or a non-nil fn error.
func ForEach(path string, fn func(Record) error, bad func(line string, err error)) error {
	rc, err := fasta.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = rc.Close() }()

	sc := bufio.NewScanner(rc)
	const maxLine = 64 * 1024 * 1024
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r\n")
		if line == "" {
			continue
		}
		rec, perr := Parse(line)
		if perr != nil {
			if bad != nil {
				bad(line, perr)
			}
			continue
		}
		if err := fn(rec); err != nil {
			return err
		}
	}
	return sc.Err()
}
