package remote

import (
	"context"
	"net"
	"net/http"
	"net/rpc"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"montage/pkg/film"
	"montage/pkg/proto"
)

var ErrUnknownCommand = errors.New("unknown command")

// Proxy serves dev over rpc on srv for the lifetime of the application.
// Once started, srv.Addr holds the address actually listened on.
func Proxy(dev proto.Display, srv *http.Server, lifecycle fx.Lifecycle, logger *zap.Logger) error {
	svc := &Service{dev: dev, logger: logger}

	server := rpc.NewServer()
	if err := server.RegisterName(serviceName, svc); err != nil {
		return err
	}
	srv.Handler = server

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			srv.Addr = ln.Addr().String()
			logger.With(zap.String("addr", srv.Addr)).Info("listening")

			go func() {
				if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
					logger.With(zap.Error(err)).Error("serve failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})

	return nil
}

type Service struct {
	mu     sync.Mutex
	dev    proto.Display
	logger *zap.Logger
}

func (s *Service) Command(name string, _ *EmptyResponse) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.logger.With(zap.String("name", name)).Debug("command")

	switch name {
	case "startup":
		return s.dev.Startup()
	case "shutdown":
		return s.dev.Shutdown()
	case "clear":
		return s.dev.Clear()
	}

	return errors.Wrap(ErrUnknownCommand, name)
}

func (s *Service) DrawFrame(req *DrawFrameRequest, _ *EmptyResponse) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.dev.DrawFrame(film.ScreenOf(req.Rows...))
}
