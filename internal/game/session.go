package game

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/pixelrestaurant/internal/entity"
	"github.com/samdwyer/pixelrestaurant/internal/pathfind"
	"github.com/samdwyer/pixelrestaurant/internal/telemetry"
	"github.com/samdwyer/pixelrestaurant/internal/world"
)

// Session is one dining room with a waiter and guests, independent of any
// screen. Time is passed in so the walk can be driven by a ticker or a test.
type Session struct {
	Grid       *world.Grid
	Start      world.Pos
	End        world.Pos
	Procession *entity.Procession

	cfg      Config
	status   Status
	route    pathfind.Route
	since    time.Time // when the current status was entered
	lastStep time.Time
	walkSpan trace.Span
}

// NewSession creates an idle session on grid.
func NewSession(cfg Config, grid *world.Grid, start, end world.Pos) *Session {
	return &Session{
		Grid:       grid,
		Start:      start,
		End:        end,
		Procession: entity.NewProcession(start, cfg.Followers),
		cfg:        cfg,
		status:     StatusIdle,
	}
}

// Status returns the current status.
func (s *Session) Status() Status { return s.status }

// Route returns the route of the current attempt, or nil.
func (s *Session) Route() pathfind.Route { return s.route }

// OnPath reports whether p is highlighted as part of the route.
func (s *Session) OnPath(p world.Pos) bool {
	return s.status == StatusShowingPath && s.route.Contains(p)
}

// Seat starts a new attempt: everyone returns to the start and a route to the
// table is computed. It does nothing while an attempt is in progress. The
// error is only for start or end positions that do not fit the grid.
func (s *Session) Seat(ctx context.Context, now time.Time) error {
	if s.status.Busy() {
		return nil
	}

	s.Procession.Reset(s.Start)
	s.route = nil

	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "path.find")
	defer span.End()

	res, err := pathfind.FindPath(s.Grid, s.Start, s.End)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(
		attribute.Int("path.start_row", s.Start.Row),
		attribute.Int("path.start_col", s.Start.Col),
		attribute.Int("path.end_row", s.End.Row),
		attribute.Int("path.end_col", s.End.Col),
		attribute.Bool("path.found", res.Found),
		attribute.Int("path.length", len(res.Route)),
		attribute.Int("path.expanded", res.Expanded),
	)

	if !res.Found {
		s.enter(StatusNoPath, now)
		return nil
	}

	s.route = res.Route
	s.enter(StatusShowingPath, now)
	return nil
}

// Advance moves the session forward to now. It returns true if anything
// visible changed.
func (s *Session) Advance(ctx context.Context, now time.Time) bool {
	switch s.status {
	case StatusShowingPath:
		if now.Sub(s.since) < s.cfg.PathPreview {
			return false
		}
		// Route is non-empty here; Follow only fails on an empty one.
		if err := s.Procession.Follow(s.route); err != nil {
			s.enter(StatusNoPath, now)
			return true
		}
		_, s.walkSpan = telemetry.Tracer("game").Start(ctx, "procession.walk",
			trace.WithAttributes(
				attribute.Int("procession.route_length", len(s.route)),
				attribute.Int("procession.followers", len(s.Procession.Followers)),
			))
		s.enter(StatusMoving, now)
		s.lastStep = now
		return true

	case StatusMoving:
		changed := false
		for now.Sub(s.lastStep) >= s.cfg.StepInterval {
			s.lastStep = s.lastStep.Add(s.cfg.StepInterval)
			if !s.Procession.Step() {
				s.finishWalk(now)
				return true
			}
			changed = true
		}
		return changed
	}
	return false
}

func (s *Session) finishWalk(now time.Time) {
	if s.walkSpan != nil {
		s.walkSpan.SetAttributes(attribute.Int("procession.steps", s.Procession.Steps()))
		s.walkSpan.End()
		s.walkSpan = nil
	}
	s.enter(StatusFinished, now)
}

func (s *Session) enter(status Status, now time.Time) {
	s.status = status
	s.since = now
}
