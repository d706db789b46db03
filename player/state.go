package player

import "fmt"

type State int

const (
	StateIdle State = iota
	StateLoading
	StatePlaying
	StateFinished
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StatePlaying:
		return "playing"
	case StateFinished:
		return "finished"
	case StateStopped:
		return "stopped"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// allowed lists the transitions the player may make.
var allowed = map[State][]State{
	StateIdle:     {StateLoading, StateStopped},
	StateLoading:  {StatePlaying, StateFinished},
	StatePlaying:  {StatePlaying, StateFinished},
	StateFinished: {StateIdle, StateStopped},
}

func canTransition(from, to State) bool {
	for _, s := range allowed[from] {
		if s == to {
			return true
		}
	}
	return false
}
