package entity

import (
	"errors"

	"github.com/samdwyer/pixelrestaurant/internal/world"
)

// ErrEmptyRoute is returned when a procession is asked to follow no route.
var ErrEmptyRoute = errors.New("entity: procession needs a non-empty route")

// Procession is a waiter leading a line of guests. Each guest replays the
// waiter's route one step behind the character in front of it.
type Procession struct {
	Leader    *Character
	Followers []*Character

	route []world.Pos
	step  int
}

// NewProcession creates a waiter and n guests, all standing at start.
func NewProcession(start world.Pos, n int) *Procession {
	if n < 0 {
		n = 0
	}
	p := &Procession{
		Leader:    NewCharacter(KindWaiter, start),
		Followers: make([]*Character, n),
	}
	for i := range p.Followers {
		p.Followers[i] = NewCharacter(KindClient, start)
	}
	return p
}

// Members returns the followers from last to first, then the leader, which is
// the order they should be drawn in.
func (p *Procession) Members() []*Character {
	out := make([]*Character, 0, len(p.Followers)+1)
	for i := len(p.Followers) - 1; i >= 0; i-- {
		out = append(out, p.Followers[i])
	}
	return append(out, p.Leader)
}

// Reset moves everyone back to start and forgets the current route.
func (p *Procession) Reset(start world.Pos) {
	p.Leader.MoveTo(start)
	for _, f := range p.Followers {
		f.MoveTo(start)
	}
	p.route = nil
	p.step = 0
}

// Follow sets the route to walk from its first position.
func (p *Procession) Follow(route []world.Pos) error {
	if len(route) == 0 {
		return ErrEmptyRoute
	}
	p.route = route
	p.step = 0
	return nil
}

// Step advances the walk by one tick. The leader stands on route[step];
// follower i (1-based) stands on route[step-i] once it has started and until
// it arrives. Step returns false once the walk is done.
func (p *Procession) Step() bool {
	if p.Done() {
		return false
	}
	n := len(p.route)
	if p.step < n {
		p.Leader.MoveTo(p.route[p.step])
	}
	for i, f := range p.Followers {
		lag := i + 1
		if p.step >= lag && p.step-lag < n {
			f.MoveTo(p.route[p.step-lag])
		}
	}
	p.step++
	return true
}

// Done reports whether every member has reached the end of the route. A
// procession without a route is always done.
func (p *Procession) Done() bool {
	return len(p.route) == 0 || p.step >= len(p.route)+len(p.Followers)
}

// Steps returns the number of ticks taken so far.
func (p *Procession) Steps() int {
	return p.step
}
