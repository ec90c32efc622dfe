// Package loop provides the main game loop for a single terminal session.
package loop

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/vectoroids/internal/audio"
	"github.com/tomz197/vectoroids/internal/config"
	"github.com/tomz197/vectoroids/internal/draw"
	"github.com/tomz197/vectoroids/internal/game"
	"github.com/tomz197/vectoroids/internal/input"
	"github.com/tomz197/vectoroids/internal/render"
)

// ErrIdleTimeout is returned by Run when no input arrived for Options.IdleTimeout.
var ErrIdleTimeout = errors.New("loop: idle timeout")

// Options configures a session.
type Options struct {
	TermSizeFunc draw.TermSizeFunc // Defaults to draw.DefaultTermSizeFunc
	Audio        audio.Player      // Defaults to audio.Nop
	Logger       *log.Logger       // Defaults to log.Default()
	Seed         uint64
	IdleTimeout  time.Duration // 0 disables
}

// session is the per-connection state of Run.
type session struct {
	opts     Options
	stream   *input.Stream
	world    *game.World
	renderer *render.Renderer
	canvas   *draw.Canvas
	out      *draw.ChunkWriter

	termWidth  int
	termHeight int
	lastInput  time.Time
}

// Run starts the main game loop with the standard Input → Update → Draw cycle.
// It returns nil when the player quits, the input ends or ctx is done.
func Run(ctx context.Context, r *bufio.Reader, w io.Writer, opts Options) error {
	if opts.TermSizeFunc == nil {
		opts.TermSizeFunc = draw.DefaultTermSizeFunc
	}
	if opts.Audio == nil {
		opts.Audio = audio.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	s := &session{
		opts:     opts,
		stream:   input.StartStream(r),
		renderer: render.NewRenderer(),
		canvas:   draw.NewCanvas(1, 1, config.FieldWidth, config.FieldHeight),
		out:      draw.NewChunkWriter(w),
	}
	s.world = game.NewWorld(game.Options{
		Seed:  opts.Seed,
		Audio: opts.Audio,
		OnGameOver: func(score int) {
			opts.Logger.Info("game over", "score", score)
		},
	})

	draw.HideCursor(s.out)
	draw.ClearScreen(s.out)
	defer func() {
		draw.ClearScreen(s.out)
		draw.ShowCursor(s.out)
		_ = s.out.Flush()
	}()

	// The clock starts one frame in the past so the first tick is never at 0.
	start := time.Now().Add(-config.TargetFrameTime)
	s.lastInput = time.Now()

	for {
		frameStart := time.Now()

		// ===== INPUT PHASE =====
		in := s.stream.ReadInput()
		if in.Quit {
			return nil
		}
		if in.Any {
			s.lastInput = frameStart
		} else if opts.IdleTimeout > 0 && frameStart.Sub(s.lastInput) > opts.IdleTimeout {
			return ErrIdleTimeout
		}

		// ===== UPDATE PHASE =====
		s.world.Update(time.Since(start).Seconds(), in)

		// ===== DRAW PHASE =====
		if err := s.drawFrame(); err != nil {
			return err
		}

		// ===== FRAME TIMING =====
		wait := config.TargetFrameTime - time.Since(frameStart)
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(max(wait, 0)):
		}
	}
}

// updateScreen checks for terminal resize and updates the canvas layout.
// It reports whether the terminal changed size.
func (s *session) updateScreen() bool {
	termWidth, termHeight, err := s.opts.TermSizeFunc()
	if err != nil || (termWidth == s.termWidth && termHeight == s.termHeight) {
		return false
	}
	s.termWidth, s.termHeight = termWidth, termHeight

	width, height, offsetCol, offsetRow := draw.Letterbox(termWidth, termHeight, config.MaxTermWidth, config.MaxTermHeight)
	s.canvas.Resize(width, height)
	s.canvas.SetOffset(offsetCol, offsetRow)
	s.canvas.ForceRedraw()
	return true
}

// drawFrame draws the world and flushes the frame to the terminal.
func (s *session) drawFrame() error {
	resized := s.updateScreen()
	if resized {
		draw.ClearScreen(s.out)
	}

	s.canvas.Clear()
	s.renderer.Frame(s.canvas, s.world)

	if err := s.canvas.Render(s.out); err != nil {
		return fmt.Errorf("render frame: %w", err)
	}
	if resized {
		if err := s.canvas.RenderBorder(s.out); err != nil {
			return fmt.Errorf("render border: %w", err)
		}
	}
	if err := s.out.Flush(); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}
