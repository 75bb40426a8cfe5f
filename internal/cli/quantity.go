// internal/cli/quantity.go
package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// Quantity is a requested yield: either an absolute base count ("250M",
// "1.5G", "5000") or a depth multiple of the reference ("25x", "2.5x").
type Quantity struct {
	Bases int64
	Depth float64 // > 0 means relative
}

// ParseQuantity parses the user-facing quantity syntax.
func ParseQuantity(s string) (Quantity, error) {
	in := strings.TrimSpace(strings.ToLower(s))
	if in == "" {
		return Quantity{}, fmt.Errorf("empty quantity")
	}
	if strings.HasSuffix(in, "x") {
		d, err := strconv.ParseFloat(in[:len(in)-1], 64)
		if err != nil || d <= 0 {
			return Quantity{}, fmt.Errorf("invalid depth quantity %q", s)
		}
		return Quantity{Depth: d}, nil
	}
	mult := 1.0
	switch {
	case strings.HasSuffix(in, "k"):
		mult, in = 1e3, in[:len(in)-1]
	case strings.HasSuffix(in, "m"):
		mult, in = 1e6, in[:len(in)-1]
	case strings.HasSuffix(in, "g"):
		mult, in = 1e9, in[:len(in)-1]
	}
	v, err := strconv.ParseFloat(in, 64)
	if err != nil || v <= 0 {
		return Quantity{}, fmt.Errorf("invalid quantity %q", s)
	}
	return Quantity{Bases: int64(v * mult)}, nil
}

// Resolve turns the quantity into a base quota over refLen total
// reference bases.
func (q Quantity) Resolve(refLen int64) int64 {
	if q.Depth > 0 {
		return int64(q.Depth * float64(refLen))
	}
	return q.Bases
}

// ParseFloats splits a comma-separated list of exactly n numbers, the
// syntax used by --length, --identity and --glitches.
func ParseFloats(flagName, s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("could not parse --%s %q: want %d comma-separated values", flagName, s, n)
	}
	out := make([]float64, n)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("could not parse --%s value %q", flagName, p)
		}
		out[i] = v
	}
	return out, nil
}
