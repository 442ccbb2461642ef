package proof

import "github.com/xDarkicex/cadical-go/sat"

// Compile-time assertions that every dialect structurally satisfies
// sat.Tracer without importing it from the sat side.
var (
	_ sat.Tracer = (*DRATTracer)(nil)
	_ sat.Tracer = (*FRATTracer)(nil)
	_ sat.Tracer = (*LRATTracer)(nil)
	_ sat.Tracer = (*VeriPBTracer)(nil)
	_ sat.Tracer = (*IDRUPTracer)(nil)
)
