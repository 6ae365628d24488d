package bakers

// Status classifies an engine result
type Status uint8

const (
	// StatusOK means the result was computed from valid inputs
	StatusOK Status = iota

	// StatusSkipped means nothing was computed because there was nothing to compute from
	StatusSkipped

	// StatusInvalid means a value was computed but from inputs a caller should have rejected
	StatusInvalid
)

// String returns the status label
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusSkipped:
		return "skipped"
	case StatusInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Outcome carries a status and a short reason for anything other than ok
type Outcome struct {
	Status Status
	Reason string
}

// OK reports whether the outcome is StatusOK
func (o Outcome) OK() bool { return o.Status == StatusOK }

func skipped(reason string) Outcome { return Outcome{Status: StatusSkipped, Reason: reason} }

func invalid(reason string) Outcome { return Outcome{Status: StatusInvalid, Reason: reason} }

// Quantities maps ingredient name to an absolute quantity
type Quantities map[string]float64

// Scale is the result of a resize: a projection, the recipe itself is not touched
type Scale struct {
	Outcome

	// FlourWeight is the flour baseline the quantities were computed for
	FlourWeight float64
	Quantities  Quantities
}

// Total sums the projected quantities
func (s Scale) Total() float64 {
	var sum float64
	for _, q := range s.Quantities {
		sum += q
	}
	return sum
}
