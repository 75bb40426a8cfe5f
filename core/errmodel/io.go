// core/errmodel/io.go
package errmodel

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"lrsim/core/fasta"
)

// Model files are plain text (gzip accepted on load): a header line with k
// and the cap, then one line per context listing alternatives in
// first-seen order. A deleted-window alternative is written as "-".

// Save serializes the model.
func (m *KmerModel) Save(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "#lrsim-error-model\tk=%d\tmax_alt=%d\n", m.k, m.maxAlt); err != nil {
		return err
	}
	keys := make([]uint32, 0, len(m.table))
	for key := range m.table {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	for _, key := range keys {
		if _, err := bw.Write(UnpackKmer(key, m.k)); err != nil {
			return err
		}
		for _, a := range m.table[key] {
			alt := a.Seq
			if alt == "" {
				alt = "-"
			}
			if _, err := fmt.Fprintf(bw, "\t%s:%d", alt, a.Count); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Load parses a serialized model.
func Load(r io.Reader) (*KmerModel, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("model: empty file")
	}
	header := sc.Text()
	if !strings.HasPrefix(header, "#lrsim-error-model") {
		return nil, fmt.Errorf("model: unrecognized header %q", header)
	}
	k, maxAlt := 0, 0
	for _, f := range strings.Split(header, "\t")[1:] {
		if v, ok := strings.CutPrefix(f, "k="); ok {
			k, _ = strconv.Atoi(v)
		}
		if v, ok := strings.CutPrefix(f, "max_alt="); ok {
			maxAlt, _ = strconv.Atoi(v)
		}
	}
	if k <= 0 || k > 16 {
		return nil, fmt.Errorf("model: bad k in header %q", header)
	}
	m := NewKmerModel(k, maxAlt)

	line := 1
	for sc.Scan() {
		line++
		fields := strings.Split(sc.Text(), "\t")
		if len(fields) < 2 {
			return nil, fmt.Errorf("model line %d: no alternatives", line)
		}
		key, ok := PackKmer([]byte(fields[0]))
		if !ok || len(fields[0]) != k {
			return nil, fmt.Errorf("model line %d: bad k-mer %q", line, fields[0])
		}
		alts := make([]alternative, 0, len(fields)-1)
		for _, f := range fields[1:] {
			s, c, ok := strings.Cut(f, ":")
			if !ok {
				return nil, fmt.Errorf("model line %d: bad alternative %q", line, f)
			}
			count, err := strconv.ParseUint(c, 10, 32)
			if err != nil || count == 0 {
				return nil, fmt.Errorf("model line %d: bad count %q", line, c)
			}
			if s == "-" {
				s = ""
			}
			alts = append(alts, alternative{Seq: s, Count: uint32(count)})
		}
		if len(alts) > m.maxAlt {
			return nil, fmt.Errorf("model line %d: %d alternatives exceed cap %d", line, len(alts), m.maxAlt)
		}
		m.table[key] = alts
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return m, nil
}

// LoadFile loads a model from path, gzip-transparently.
func LoadFile(path string) (*KmerModel, error) {
	rc, err := fasta.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	return Load(rc)
}
