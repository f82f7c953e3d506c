package scratchcard

// Phase is the lifecycle phase of a Card.
type Phase uint8

const (
	// PhaseUninitialized is the phase before the image load starts.
	PhaseUninitialized Phase = iota

	// PhaseImageLoading waits for the host to finish loading the image.
	PhaseImageLoading

	// PhaseReady accepts a new stroke.
	PhaseReady

	// PhaseStroking has an active stroke; moves erase.
	PhaseStroking

	// PhaseCompleted has hidden the cover. Events are ignored.
	PhaseCompleted

	// PhaseUnsupported means the host had no drawing surface. Terminal.
	PhaseUnsupported

	// PhaseDestroyed means Destroy ran. Terminal.
	PhaseDestroyed
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseUninitialized:
		return "Uninitialized"
	case PhaseImageLoading:
		return "ImageLoading"
	case PhaseReady:
		return "Ready"
	case PhaseStroking:
		return "Stroking"
	case PhaseCompleted:
		return "Completed"
	case PhaseUnsupported:
		return "Unsupported"
	case PhaseDestroyed:
		return "Destroyed"
	default:
		return "Unknown"
	}
}

// Terminal reports whether no further transitions are possible except
// Destroy.
func (p Phase) Terminal() bool {
	return p == PhaseCompleted || p == PhaseUnsupported || p == PhaseDestroyed
}

// State is the session state of a Card.
type State struct {
	Phase Phase

	// OffsetX and OffsetY are the canvas page offset, measured on the first
	// stroke and reused afterwards. OffsetKnown is false until then.
	OffsetX, OffsetY float64
	OffsetKnown      bool

	// LastX and LastY are the last stroke point in surface coordinates.
	LastX, LastY float64
}
