package controller

// EditState tracks the single edit dialog the whole list may have open.
type EditState int

const (
	Idle EditState = iota
	Editing
)

func (s EditState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Editing:
		return "editing"
	default:
		return "unknown"
	}
}
