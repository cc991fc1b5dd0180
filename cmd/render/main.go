package main

import (
	"context"
	"io"
	"net/http"
	"os"

	flag "github.com/spf13/pflag"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"montage/pkg/device/console"
	"montage/pkg/device/remote"
	"montage/pkg/proto"
)

var serial = flag.String("serial", "", "serial name of a character display, stdout when empty")
var baud = flag.Int("baud", 115200, "serial baud rate")
var listen = flag.String("listen", ":9123", "listen addr")
var plain = flag.Bool("plain", false, "draw without ANSI escapes")
var debug = flag.Bool("debug", false, "set debug")

func main() {
	flag.Parse()

	fx.New(
		fx.Provide(
			newLogger,
			func() *http.Server {
				return &http.Server{Addr: *listen}
			},
			newDisplay,
		),
		fx.Invoke(
			remote.Proxy,
		),
	).Run()
}

func newLogger() (*zap.Logger, error) {
	if *debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func newDisplay(logger *zap.Logger, lifecycle fx.Lifecycle) proto.Display {
	var w io.Writer = os.Stdout
	opts := []console.Option{}

	if *serial != "" {
		port := proto.NewSerial(*serial)
		port.Lifecycle(lifecycle, &proto.Options{DTR: true, RTS: true, BaudRate: *baud})
		w = port
		logger = logger.With(zap.String("serial", port.Name()))
	}

	if *plain {
		opts = append(opts, console.WithoutANSI())
	}

	dev := console.New(w, logger, opts...)

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return dev.Startup()
		},
		OnStop: func(ctx context.Context) error {
			return dev.Shutdown()
		},
	})

	return dev
}
