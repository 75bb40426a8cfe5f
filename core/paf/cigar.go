// core/paf/cigar.go
package paf

import "fmt"

// Op is one CIGAR operation.
type Op struct {
	Len  int
	Kind byte // M, =, X, I, D
}

// ParseCigar expands a CIGAR string into its operations. Only the ops that
// appear in minimap2-style cg tags (M, =, X, I, D) are accepted.
func ParseCigar(cg string) ([]Op, error) {
	var ops []Op
	n := 0
	for i := 0; i < len(cg); i++ {
		c := cg[i]
		if c >= '0' && c <= '9' {
			n = n*10 + int(c-'0')
			continue
		}
		switch c {
		case 'M', '=', 'X', 'I', 'D':
		default:
			return nil, fmt.Errorf("cigar: unsupported op %q", c)
		}
		if n == 0 {
			return nil, fmt.Errorf("cigar: zero-length op %q", c)
		}
		ops = append(ops, Op{Len: n, Kind: c})
		n = 0
	}
	if n != 0 {
		return nil, fmt.Errorf("cigar: trailing length without op")
	}
	return ops, nil
}

// Spans returns the total reference and query bases consumed by ops.
func Spans(ops []Op) (ref, query int) {
	for _, op := range ops {
		switch op.Kind {
		case 'M', '=', 'X':
			ref += op.Len
			query += op.Len
		case 'I':
			query += op.Len
		case 'D':
			ref += op.Len
		}
	}
	return ref, query
}
