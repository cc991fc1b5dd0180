package projector

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"montage/pkg/film"
	"montage/pkg/proto"
)

func New(dst proto.Display, logger *zap.Logger, opts ...Option) *Projector {
	p := &Projector{
		dev:    dst,
		logger: logger,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Projector plays films on a display, one frame per step, as fast as the
// display accepts them.
type Projector struct {
	dev    proto.Display
	logger *zap.Logger
	effs   []Effect
	limit  int
	rewind bool
}

// Play draws the frames of f until it is exhausted, the limit is reached or
// ctx is done, and returns how many frames were drawn.
func (p *Projector) Play(ctx context.Context, f film.Film) (int, error) {
	if p.rewind {
		f.Rewind()
	}

	if eff := lo.Sample(p.effs); eff != nil {
		f = eff(f)
	}

	log := p.logger.With(zap.Int("h", f.Height()), zap.Int("w", f.Width()))

	s := film.ScreenFor(f)
	drawn := 0
	for p.limit <= 0 || drawn < p.limit {
		if err := ctx.Err(); err != nil {
			log.With(zap.Int("frames", drawn), zap.Error(err)).Info("play-interrupted")
			return drawn, err
		}

		if !f.Step(s) {
			break
		}

		if err := p.dev.DrawFrame(s); err != nil {
			return drawn, fmt.Errorf("draw frame %d failed: %w", drawn, err)
		}
		drawn++
	}

	log.With(zap.Int("frames", drawn)).Info("play-done")
	return drawn, nil
}
