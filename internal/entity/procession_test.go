package entity

import (
	"errors"
	"testing"

	"github.com/samdwyer/pixelrestaurant/internal/world"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindWaiter, "waiter"},
		{KindClient, "client"},
		{Kind(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.expected {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.expected)
		}
	}
}

func TestNewProcession(t *testing.T) {
	start := world.Pos{Row: 1, Col: 1}
	p := NewProcession(start, 2)

	if p.Leader.Kind != KindWaiter {
		t.Errorf("Leader.Kind = %v, want waiter", p.Leader.Kind)
	}
	if len(p.Followers) != 2 {
		t.Fatalf("len(Followers) = %d, want 2", len(p.Followers))
	}
	for i, m := range p.Members() {
		if m.Pos != start {
			t.Errorf("member %d at %v, want %v", i, m.Pos, start)
		}
	}
	if !p.Done() {
		t.Error("procession without a route should be done")
	}
}

func TestProcessionFollowEmptyRoute(t *testing.T) {
	p := NewProcession(world.Pos{}, 2)
	if err := p.Follow(nil); !errors.Is(err, ErrEmptyRoute) {
		t.Errorf("Follow(nil) error = %v, want ErrEmptyRoute", err)
	}
}

func TestProcessionLagSchedule(t *testing.T) {
	route := []world.Pos{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 1, Col: 2}}
	p := NewProcession(route[0], 2)
	if err := p.Follow(route); err != nil {
		t.Fatalf("Follow: %v", err)
	}

	// Positions after each tick: leader, follower 1, follower 2.
	want := [][3]world.Pos{
		{{Row: 0, Col: 0}, {Row: 0, Col: 0}, {Row: 0, Col: 0}},
		{{Row: 0, Col: 1}, {Row: 0, Col: 0}, {Row: 0, Col: 0}},
		{{Row: 0, Col: 2}, {Row: 0, Col: 1}, {Row: 0, Col: 0}},
		{{Row: 1, Col: 2}, {Row: 0, Col: 2}, {Row: 0, Col: 1}},
		{{Row: 1, Col: 2}, {Row: 1, Col: 2}, {Row: 0, Col: 2}},
		{{Row: 1, Col: 2}, {Row: 1, Col: 2}, {Row: 1, Col: 2}},
	}

	for tick, w := range want {
		if !p.Step() {
			t.Fatalf("Step() returned false at tick %d", tick)
		}
		got := [3]world.Pos{p.Leader.Pos, p.Followers[0].Pos, p.Followers[1].Pos}
		if got != w {
			t.Errorf("tick %d: positions = %v, want %v", tick, got, w)
		}
	}

	if !p.Done() {
		t.Error("Done() = false after len(route)+followers ticks")
	}
	if p.Step() {
		t.Error("Step() after done should return false")
	}
	if p.Steps() != len(route)+2 {
		t.Errorf("Steps() = %d, want %d", p.Steps(), len(route)+2)
	}
}

func TestProcessionReset(t *testing.T) {
	route := []world.Pos{{Row: 0, Col: 0}, {Row: 0, Col: 1}}
	p := NewProcession(route[0], 1)
	_ = p.Follow(route)
	p.Step()
	p.Step()

	start := world.Pos{Row: 3, Col: 3}
	p.Reset(start)

	for i, m := range p.Members() {
		if m.Pos != start {
			t.Errorf("member %d at %v after Reset, want %v", i, m.Pos, start)
		}
	}
	if !p.Done() || p.Steps() != 0 {
		t.Errorf("Reset left route state: done=%v steps=%d", p.Done(), p.Steps())
	}
}

func TestProcessionMembersDrawOrder(t *testing.T) {
	p := NewProcession(world.Pos{}, 2)
	members := p.Members()

	if len(members) != 3 {
		t.Fatalf("len(Members()) = %d, want 3", len(members))
	}
	if members[0] != p.Followers[1] || members[2] != p.Leader {
		t.Error("Members() should list the last follower first and the leader last")
	}
}
