package proto

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.bug.st/serial"
	"go.uber.org/fx"
)

var ErrPortNotFound = errors.New("serial port not found")

type Options struct {
	DTR         bool
	RTS         bool
	BaudRate    int
	ReadTimeout time.Duration
}

func NewSerial(name string) *Serial {
	return &Serial{name: name, list: serial.GetPortsList, open: serial.Open}
}

// Serial is a serial port looked up by a fragment of its name, usable as
// the writer of a character display.
type Serial struct {
	name string
	port serial.Port
	list func() ([]string, error)
	open func(name string, mode *serial.Mode) (serial.Port, error)
}

func (s *Serial) Name() string {
	return s.name
}

func (s *Serial) Ports() ([]string, error) {
	return s.list()
}

func (s *Serial) Open(opts *Options) error {
	ports, err := s.Ports()
	if err != nil {
		return err
	}

	var matched string
	for _, name := range ports {
		if strings.Contains(name, s.name) {
			matched = name
			break
		}
	}
	if matched == "" {
		return errors.Wrap(ErrPortNotFound, s.name)
	}

	port, err := s.open(matched, &serial.Mode{BaudRate: opts.BaudRate})
	if err != nil {
		return err
	}

	if err := port.SetDTR(opts.DTR); err != nil {
		return err
	}

	if err := port.SetRTS(opts.RTS); err != nil {
		return err
	}

	if opts.ReadTimeout > 0 {
		if err := port.SetReadTimeout(opts.ReadTimeout); err != nil {
			return err
		}
	}

	s.port = port
	return nil
}

// Lifecycle opens the port when lc starts and closes it when lc stops.
func (s *Serial) Lifecycle(lc fx.Lifecycle, opts *Options) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return s.Open(opts)
		},
		OnStop: func(ctx context.Context) error {
			return s.Close()
		},
	})
}

func (s *Serial) Close() error {
	if s.port == nil {
		return nil
	}
	return s.port.Close()
}

func (s *Serial) Read(p []byte) (n int, err error) {
	return s.port.Read(p)
}

func (s *Serial) Write(p []byte) (n int, err error) {
	return s.port.Write(p)
}
