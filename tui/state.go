package tui

type state int

const (
	errorState state = iota
	providersState
	targetState
	browseState
)

func (s state) String() string {
	switch s {
	case errorState:
		return "error"
	case providersState:
		return "providers"
	case targetState:
		return "target"
	case browseState:
		return "browse"
	default:
		return "unknown"
	}
}
