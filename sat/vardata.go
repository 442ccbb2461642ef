package sat

// VarStatus is the lifecycle state of a variable (spec §3).
type VarStatus uint8

const (
	StatusUnused VarStatus = iota
	StatusActive
	StatusFixed
	StatusEliminated
	StatusSubstituted
	StatusPure
)

// VarFlags is the bitset of per-variable flags spec §3 enumerates.
type VarFlags uint32

const (
	FlagSeen VarFlags = 1 << iota
	FlagKeep
	FlagPoison
	FlagRemovable
	FlagShrinkable
	FlagAdded
	FlagElim
	FlagSubsume
	FlagTernary
	FlagSweep
	FlagBlockable
	FlagBlock
	FlagSkip
	FlagAssumed
	FlagFailed
)

func (vd *VarData) has(f VarFlags) bool  { return vd.Flags&f != 0 }
func (vd *VarData) set(f VarFlags)       { vd.Flags |= f }
func (vd *VarData) clear(f VarFlags)     { vd.Flags &^= f }

// Phase is a single saved/target/best/forced/min polarity bit, stored as
// int8 so "unset" (0) is distinguishable from false (-1) / true (+1).
type Phase int8

const (
	PhaseUnset Phase = 0
	PhaseFalse Phase = -1
	PhaseTrue  Phase = 1
)

// VarData is the per-variable record spec §3 calls "Variable record".
type VarData struct {
	Value int8 // -1, 0, +1: current assignment

	Level    int32
	TrailPos int32
	Reason   ClauseRef

	// VMTF
	VMTFPrev, VMTFNext int32
	Bumped             int64

	// EVSIDS
	Score    float64
	HeapPos  int // -1 if not in heap

	SavedPhase, TargetPhase, BestPhase, ForcedPhase, MinPhase Phase

	Flags  VarFlags
	Status VarStatus
}

func newVarData() VarData {
	return VarData{
		Value:   0,
		Reason:  CRefNone,
		HeapPos: -1,
		Status:  StatusActive,
	}
}

// Assigned reports whether the variable currently has a value.
func (vd *VarData) Assigned() bool { return vd.Value != 0 }
