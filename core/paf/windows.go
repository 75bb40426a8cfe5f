// core/paf/windows.go
package paf

// Window is one local identity measurement over an aligned read.
type Window struct {
	Offset   int // read offset of the window start, within the aligned span
	Identity float64
}

// WindowIdentities slides a fixed window over the aligned portion of the
// record's read and reports local identity per window: matched bases over
// window size, with deleted reference bases charged to the read position
// where the deletion occurs. Records without a cg tag yield a nil slice.
func WindowIdentities(rec Record, window int) ([]Window, error) {
	if rec.Cigar == "" || window <= 0 {
		return nil, nil
	}
	ops, err := ParseCigar(rec.Cigar)
	if err != nil {
		return nil, err
	}
	_, qSpan := Spans(ops)
	if qSpan < window {
		return nil, nil
	}

	// Per read base: 1 for a match, 0 for mismatch/insertion; deletions add
	// extra error weight at the current base.
	match := make([]float64, qSpan)
	errs := make([]float64, qSpan)
	q := 0
	for _, op := range ops {
		switch op.Kind {
		case '=', 'M':
			for i := 0; i < op.Len; i++ {
				match[q] = 1
				q++
			}
		case 'X', 'I':
			q += op.Len
		case 'D':
			at := q
			if at >= qSpan {
				at = qSpan - 1
			}
			errs[at] += float64(op.Len)
		}
	}

	var out []Window
	var matched, extra float64
	for i := 0; i < qSpan; i++ {
		matched += match[i]
		extra += errs[i]
		if i+1 >= window {
			if i+1 > window {
				matched -= match[i-window]
				extra -= errs[i-window]
			}
			id := (matched - extra) / float64(window)
			if id < 0 {
				id = 0
			}
			out = append(out, Window{Offset: i + 1 - window, Identity: id})
		}
	}
	return out, nil
}
