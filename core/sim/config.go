// core/sim/config.go
package sim

// Config is the validated run configuration for one simulation. Rates and
// identities are fractions in [0,1]; the CLI layer converts user-facing
// percentages and guarantees the documented invariants (chimera <= 0.5,
// junk+random <= 1, identity bounds consistent, stdev >= 0), so nothing
// here re-validates.
type Config struct {
	// Fragment length distribution (gamma; stdev 0 means constant).
	FragLenMean  float64
	FragLenStdev float64

	// Identity distribution (beta scaled to IdentityMax; higher shape
	// concentrates draws near the mean).
	IdentityMean  float64
	IdentityMax   float64
	IdentityShape float64

	// Adapters on read starts and ends.
	StartAdapterRate   float64
	StartAdapterAmount float64
	EndAdapterRate     float64
	EndAdapterAmount   float64
	StartAdapterSeq    string
	EndAdapterSeq      string

	// Problem rates.
	JunkFrac    float64 // low-complexity reads
	RandomFrac  float64 // uniform-random reads
	ChimeraFrac float64 // per-boundary join probability

	// Glitches: mean spacing in read bases, mean size added/dropped at an
	// event, mean reference bases skipped. Rate 0 disables glitches.
	GlitchRate float64
	GlitchSize float64
	GlitchSkip float64

	SmallPlasmidBias bool
}

const (
	// minFragLength is the smallest fragment worth sequencing.
	minFragLength = 25
	// minIdentity is the lowest target identity ever sampled.
	minIdentity = 0.5
	// maxSegments bounds chimera joining so a 100% rate cannot spin.
	maxSegments = 8
	// maxErrorPasses bounds the identity-targeting walk.
	maxErrorPasses = 25
	// maxFragmentTries bounds consecutive infeasible fragment draws
	// (small circular references under SmallPlasmidBias) before the run
	// gives up.
	maxFragmentTries = 1000
)
