// pkg/api/reads_v1.go
package api

// ReadV1 is the stable JSON/JSONL schema for simulated reads.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ReadV1 struct {
	ID           string   `json:"id"`
	Seq          string   `json:"seq"`
	Length       int      `json:"length"`
	Origin       []string `json:"origin"`
	Identity     float64  `json:"identity"`
	ErrorFreeLen int      `json:"error_free_length"`
	Chimera      bool     `json:"chimera,omitempty"`
	Junk         bool     `json:"junk,omitempty"`
	RandomSeq    bool     `json:"random,omitempty"`
	Glitches     int      `json:"glitches,omitempty"`
}
