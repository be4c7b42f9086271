// Package game provides the main game loop and session state.
package game

// Status is the phase of a seating attempt.
type Status int

const (
	// StatusIdle is before the first attempt.
	StatusIdle Status = iota
	// StatusShowingPath highlights the found route before anyone moves.
	StatusShowingPath
	// StatusMoving walks the waiter and guests along the route.
	StatusMoving
	// StatusFinished means everyone reached the table.
	StatusFinished
	// StatusNoPath means the table cannot be reached.
	StatusNoPath
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusShowingPath:
		return "showing_path"
	case StatusMoving:
		return "moving"
	case StatusFinished:
		return "finished"
	case StatusNoPath:
		return "no_path"
	default:
		return "unknown"
	}
}

// Busy reports whether an attempt is in progress and new starts are ignored.
func (s Status) Busy() bool {
	return s == StatusShowingPath || s == StatusMoving
}

// ButtonText returns the label of the start button in this status.
func (s Status) ButtonText() string {
	switch s {
	case StatusIdle:
		return "Seat Guests"
	case StatusShowingPath:
		return "Path Found!"
	case StatusMoving:
		return "On Our Way..."
	case StatusFinished:
		return "Play Again"
	case StatusNoPath:
		return "No Path! Try Again"
	default:
		return "Start"
	}
}

// Message returns the status line shown under the button, if any.
func (s Status) Message() string {
	switch s {
	case StatusFinished:
		return "Guests have been seated!"
	case StatusNoPath:
		return "Could not find a path to the table!"
	default:
		return ""
	}
}
