package sat

import "github.com/xDarkicex/cadical-go/core"

// Options is the typed registry behind Solver.Configure and the bundled
// option sets of spec §6.1 ("default", "plain", "sat", "unsat"). Unknown
// option names are a contract violation (spec §7); known ones are plain
// typed fields, not a generic map, matching how small a surface the spec
// actually asks for.
type Options struct {
	Elim      bool
	Probe     bool
	Vivify    bool
	Ternary   bool
	Transred  bool
	Congruence bool
	Sweep     bool
	Subsume   bool

	Walk      bool
	Reduce    bool
	Stabilize bool
	Chrono    bool

	TargetPhases bool
	ForcedPhase  Phase // global forced phase override, PhaseUnset if none

	StableReluctantBase int64
	UnstableRestartInt  int64
	RestartMargin       int64 // percent

	ReduceTarget int // percent of candidates killed per reduce
	Tier1Glue    int32
	Tier2Glue    int32

	ProbeEffort    int64
	ElimEffort     int64
	VivifyEffort   int64
	SweepEffort    int64
	InprocessEvery int64 // conflicts between inprocessing rounds
}

func DefaultOptions() *Options {
	return &Options{
		Elim: true, Probe: true, Vivify: true, Ternary: true,
		Transred: true, Congruence: true, Sweep: true, Subsume: true,
		Walk: false, Reduce: true, Stabilize: true, Chrono: true,
		TargetPhases:        true,
		StableReluctantBase: 100,
		UnstableRestartInt:  50,
		RestartMargin:       10,
		ReduceTarget:        50,
		Tier1Glue:           2,
		Tier2Glue:           6,
		ProbeEffort:         10_000,
		ElimEffort:          20_000,
		VivifyEffort:        10_000,
		SweepEffort:         5_000,
		InprocessEvery:      5_000,
	}
}

// Configure applies a bundled option set named by spec §6.1's configure(name).
func (o *Options) Configure(name string) error {
	switch name {
	case "default":
		*o = *DefaultOptions()
	case "plain":
		*o = *DefaultOptions()
		o.Elim, o.Probe, o.Vivify, o.Ternary = false, false, false, false
		o.Transred, o.Congruence, o.Sweep, o.Subsume = false, false, false, false
	case "sat":
		*o = *DefaultOptions()
		o.Stabilize = true
		o.TargetPhases = true
	case "unsat":
		*o = *DefaultOptions()
		o.Stabilize = false
		o.ElimEffort *= 2
	default:
		return core.NewContractError("sat", "Options.Configure", "unknown configuration bundle: "+name)
	}
	return nil
}

// Set applies a single named option (spec §6.1: "elim", "walk", "reduce",
// "stabilize", "chrono", ...). Unknown names fail the call.
func (o *Options) Set(name string, value bool) error {
	switch name {
	case "elim":
		o.Elim = value
	case "probe":
		o.Probe = value
	case "vivify":
		o.Vivify = value
	case "ternary":
		o.Ternary = value
	case "transred":
		o.Transred = value
	case "congruence":
		o.Congruence = value
	case "sweep":
		o.Sweep = value
	case "subsume":
		o.Subsume = value
	case "walk":
		o.Walk = value
	case "reduce":
		o.Reduce = value
	case "stabilize":
		o.Stabilize = value
	case "chrono":
		o.Chrono = value
	default:
		return core.NewContractError("sat", "Options.Set", "unknown option: "+name)
	}
	return nil
}
