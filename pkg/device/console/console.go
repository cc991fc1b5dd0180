package console

import (
	"bytes"
	"io"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"montage/pkg/film"
	"montage/pkg/proto"
)

const (
	clearScreen = "\x1b[2J"
	cursorHome  = "\x1b[H"
	lineBreak   = "\r\n"
)

type Option func(c *Console)

// WithoutANSI draws frames as plain rows separated by a blank line.
func WithoutANSI() Option {
	return func(c *Console) {
		c.ansi = false
	}
}

func WithCloseOnShutdown() Option {
	return func(c *Console) {
		c.closeOnShutdown = true
	}
}

func New(w io.Writer, logger *zap.Logger, opts ...Option) proto.Display {
	c := &Console{
		w:      w,
		logger: logger,
		ansi:   true,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Console draws frames as text on a terminal-like writer, such as stdout or
// a serial character display.
type Console struct {
	w               io.Writer
	logger          *zap.Logger
	ansi            bool
	closeOnShutdown bool
}

func (c *Console) Startup() error {
	c.logger.With(zap.Bool("ansi", c.ansi)).Info("startup")
	return c.Clear()
}

func (c *Console) Shutdown() error {
	c.logger.Info("shutdown")

	if !c.closeOnShutdown {
		return nil
	}

	if cl, ok := c.w.(io.Closer); ok {
		return cl.Close()
	}
	return nil
}

func (c *Console) Clear() error {
	if !c.ansi {
		return nil
	}
	return c.send([]byte(clearScreen + cursorHome))
}

func (c *Console) DrawFrame(frame film.Screen) error {
	if frame.Height() == 0 {
		return errors.New("empty frame")
	}

	var buf bytes.Buffer
	if c.ansi {
		buf.WriteString(cursorHome)
	}
	for _, line := range frame.Lines() {
		buf.WriteString(line)
		buf.WriteString(lineBreak)
	}
	if !c.ansi {
		buf.WriteString(lineBreak)
	}

	return c.send(buf.Bytes())
}

func (c *Console) send(bs []byte) error {
	start := time.Now()
	n, err := c.w.Write(bs)
	if err != nil {
		return err
	}

	c.logger.With(
		zap.Int("sent", n),
		zap.String("cost", time.Since(start).String()),
	).Debug("transfer")

	return nil
}
