package bakers

import (
	"strconv"
	"strings"
)

// PhaseRefPrefix is the wire encoding for a back-reference to an earlier phase, e.g. "PHASE:0"
const PhaseRefPrefix = "PHASE:"

// RefKind tells a named ingredient reference apart from a phase back-reference
type RefKind uint8

const (
	// RefNamed points at a main ingredient by name
	RefNamed RefKind = iota

	// RefPhase points at the aggregate output of an earlier phase
	RefPhase
)

// Ref is the target of a phase ingredient
type Ref struct {
	kind  RefKind
	name  string
	phase int
}

// Named returns a reference to a main ingredient
func Named(name string) Ref { return Ref{kind: RefNamed, name: name} }

// PhaseBackref returns a reference to the phase at index
func PhaseBackref(index int) Ref { return Ref{kind: RefPhase, phase: index} }

// ParseRef decodes the wire form. Only "PHASE:" followed by a canonical decimal index is a back-reference,
// anything else (including "phase:1", "PHASE:x" or "PHASE:01") is treated as a plain ingredient name
func ParseRef(s string) Ref {
	rest, ok := strings.CutPrefix(s, PhaseRefPrefix)
	if !ok || rest == "" || (len(rest) > 1 && rest[0] == '0') {
		return Named(s)
	}
	for i := 0; i < len(rest); i++ {
		if rest[i] < '0' || rest[i] > '9' {
			return Named(s)
		}
	}
	n, err := strconv.Atoi(rest)
	if err != nil {
		return Named(s)
	}
	return PhaseBackref(n)
}

// Kind returns the reference kind
func (r Ref) Kind() RefKind { return r.kind }

// IsBackref reports whether r points at an earlier phase
func (r Ref) IsBackref() bool { return r.kind == RefPhase }

// Name returns the ingredient name, empty for back-references
func (r Ref) Name() string {
	if r.kind == RefPhase {
		return ""
	}
	return r.name
}

// Phase returns the referenced phase index
func (r Ref) Phase() (int, bool) {
	if r.kind != RefPhase {
		return 0, false
	}
	return r.phase, true
}

// String returns the wire form
func (r Ref) String() string {
	if r.kind == RefPhase {
		return PhaseRefPrefix + strconv.Itoa(r.phase)
	}
	return r.name
}
