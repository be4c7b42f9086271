package game

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/pixelrestaurant/internal/gamedata"
	"github.com/samdwyer/pixelrestaurant/internal/telemetry"
	"github.com/samdwyer/pixelrestaurant/internal/ui"
)

// Game holds the entire game state.
type Game struct {
	cfg      Config
	screen   *ui.Screen
	renderer *ui.Renderer
	layout   *gamedata.Layout
	session  *Session
	running  bool
}

// New loads the configured layout and opens the terminal screen.
func New(cfg Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	layout, err := gamedata.LoadLayout(cfg.Layout)
	if err != nil {
		return nil, err
	}
	styles, err := gamedata.NewStyleRegistry(layout.Styles)
	if err != nil {
		return nil, err
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return &Game{
		cfg:      cfg,
		screen:   screen,
		renderer: ui.NewRenderer(screen, styles),
		layout:   layout,
		running:  true,
	}, nil
}

// Run executes the main game loop.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Close()

	tracer := telemetry.Tracer("game")
	ctx, initSpan := tracer.Start(ctx, "game.init")

	grid, err := g.layout.Grid()
	if err != nil {
		initSpan.RecordError(err)
		initSpan.End()
		return fmt.Errorf("build layout %s: %w", g.layout.Name, err)
	}
	g.session = NewSession(g.cfg, grid, g.layout.Start.Pos(), g.layout.End.Pos())

	initSpan.SetAttributes(
		attribute.String("layout.name", g.layout.Name),
		attribute.Int("layout.rows", grid.Rows()),
		attribute.Int("layout.cols", grid.Cols()),
		attribute.Int("procession.followers", g.cfg.Followers),
	)
	initSpan.End()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go g.tick(ctx)

	for g.running {
		g.render()
		if err := g.handleEvent(ctx); err != nil {
			return err
		}
	}
	return nil
}

// tick wakes the event loop at the step interval so the walk keeps moving
// without input.
func (g *Game) tick(ctx context.Context) {
	ticker := time.NewTicker(max(g.cfg.StepInterval/2, time.Millisecond))
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// A full event queue just drops this wake-up.
			_ = g.screen.PostEvent(tcell.NewEventInterrupt(nil))
		}
	}
}

func (g *Game) render() {
	s := g.session
	g.renderer.Render(ui.Scene{
		Title:    g.layout.Title,
		Subtitle: g.layout.Subtitle,
		Grid:     s.Grid,
		OnPath:   s.OnPath,
		Members:  s.Procession.Members(),
		Button:   s.Status().ButtonText(),
		Message:  s.Status().Message(),
	})
}

// handleEvent processes a single event.
func (g *Game) handleEvent(ctx context.Context) error {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		return g.handleKeyEvent(ctx, ev)
	case *tcell.EventInterrupt:
		g.session.Advance(ctx, ev.When())
	case *tcell.EventResize:
		g.screen.Sync()
	case nil:
		// Screen finalized
		g.running = false
	}
	return nil
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) error {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false
	case tcell.KeyEnter:
		return g.session.Seat(ctx, ev.When())
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			return g.session.Seat(ctx, ev.When())
		case 'q', 'Q':
			g.running = false
		}
	}
	return nil
}
