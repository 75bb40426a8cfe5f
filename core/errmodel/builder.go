// core/errmodel/builder.go
package errmodel

import (
	"errors"
	"fmt"

	"lrsim/core/fasta"
	"lrsim/core/paf"
	"lrsim/core/seq"
)

// maxIndelPerKmer drops read-side alternatives whose length strays too far
// from the context size; such windows come from large structural indels,
// not local sequencing error.
const maxIndelPerKmer = 4

// BuildOptions configures a model build.
type BuildOptions struct {
	K             int
	MaxAlt        int
	MaxAlignments int // 0 = unlimited; otherwise first N usable alignments
}

// BuildStats aggregates the anomalies a build skipped over.
type BuildStats struct {
	AlignmentsUsed    int
	AlignmentsSkipped int
	Observations      int64
}

// ErrFull is returned by Add once MaxAlignments alignments were consumed.
var ErrFull = errors.New("alignment limit reached")

// Builder accumulates k-mer observations from alignments of real reads to
// a reference. Given identical inputs in identical order it always
// produces an identical model.
type Builder struct {
	opts  BuildOptions
	refs  map[string][]byte
	reads map[string][]byte
	model *KmerModel
	stats BuildStats
}

// NewBuilder prepares a build over the given reference set and read set.
func NewBuilder(refs []fasta.Record, reads map[string][]byte, opts BuildOptions) *Builder {
	refSeqs := make(map[string][]byte, len(refs))
	for i := range refs {
		refSeqs[refs[i].Name] = refs[i].Seq
	}
	return &Builder{
		opts:  opts,
		refs:  refSeqs,
		reads: reads,
		model: NewKmerModel(opts.K, opts.MaxAlt),
	}
}

// Full reports whether the alignment cap has been reached.
func (b *Builder) Full() bool {
	return b.opts.MaxAlignments > 0 && b.stats.AlignmentsUsed >= b.opts.MaxAlignments
}

// Add consumes one alignment record. A non-nil error means the record was
// skipped (and counted); the build itself continues.
func (b *Builder) Add(rec paf.Record) error {
	if b.Full() {
		return ErrFull
	}
	if err := b.walk(rec); err != nil {
		b.stats.AlignmentsSkipped++
		return fmt.Errorf("alignment %s vs %s: %w", rec.QueryName, rec.TargetName, err)
	}
	b.stats.AlignmentsUsed++
	return nil
}

func (b *Builder) walk(rec paf.Record) error {
	ref, ok := b.refs[rec.TargetName]
	if !ok {
		return fmt.Errorf("unknown reference %q", rec.TargetName)
	}
	read, ok := b.reads[rec.QueryName]
	if !ok {
		return fmt.Errorf("unknown read %q", rec.QueryName)
	}
	if rec.Cigar == "" {
		return errors.New("no cg:Z: tag (align with minimap2 -c)")
	}
	if len(read) != rec.QueryLen {
		return fmt.Errorf("read length %d disagrees with PAF query length %d", len(read), rec.QueryLen)
	}
	if rec.TargetEnd > len(ref) {
		return fmt.Errorf("target end %d beyond reference length %d", rec.TargetEnd, len(ref))
	}
	ops, err := paf.ParseCigar(rec.Cigar)
	if err != nil {
		return err
	}

	var q []byte
	if rec.Strand == '+' {
		q = read[rec.QueryStart:rec.QueryEnd]
	} else {
		rc := seq.RevComp(read)
		q = rc[rec.QueryLen-rec.QueryEnd : rec.QueryLen-rec.QueryStart]
	}
	refSpan, qSpan := paf.Spans(ops)
	if refSpan != rec.TargetEnd-rec.TargetStart || qSpan != len(q) {
		return fmt.Errorf("cigar spans (%d,%d) disagree with coordinates (%d,%d)",
			refSpan, qSpan, rec.TargetEnd-rec.TargetStart, len(q))
	}

	// Per reference position, the query interval aligned to it. Deleted
	// reference bases get an empty interval; insertions land between two
	// intervals and are picked up by any window spanning the junction.
	qBeg := make([]int, refSpan)
	qEnd := make([]int, refSpan)
	r, qi := 0, 0
	for _, op := range ops {
		switch op.Kind {
		case 'M', '=', 'X':
			for i := 0; i < op.Len; i++ {
				qBeg[r] = qi
				qEnd[r] = qi + 1
				r++
				qi++
			}
		case 'D':
			for i := 0; i < op.Len; i++ {
				qBeg[r] = qi
				qEnd[r] = qi
				r++
			}
		case 'I':
			qi += op.Len
		}
	}

	k := b.model.k
	for i := 0; i+k <= refSpan; i++ {
		key, ok := PackKmer(ref[rec.TargetStart+i : rec.TargetStart+i+k])
		if !ok {
			continue
		}
		alt := q[qBeg[i]:qEnd[i+k-1]]
		if len(alt) < k-maxIndelPerKmer || len(alt) > k+maxIndelPerKmer {
			continue
		}
		b.model.add(key, string(alt))
		b.stats.Observations++
	}
	return nil
}

// Model returns the accumulated model. An all-skipped build yields an
// empty model, which behaves as all-identity when queried; callers report
// that rather than failing.
func (b *Builder) Model() *KmerModel { return b.model }

// Stats returns the build counters.
func (b *Builder) Stats() BuildStats { return b.stats }
