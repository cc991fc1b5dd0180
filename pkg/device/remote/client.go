package remote

import (
	"net/rpc"

	"montage/pkg/film"
	"montage/pkg/proto"
)

// New connects to a display served by Proxy.
func New(addr string) (proto.Display, error) {
	client, err := rpc.DialHTTP("tcp", addr)
	if err != nil {
		return nil, err
	}

	return &Client{rpc: client}, nil
}

type Client struct {
	rpc *rpc.Client
}

func (c *Client) Startup() error {
	return c.command("startup")
}

func (c *Client) Shutdown() error {
	return c.command("shutdown")
}

func (c *Client) Clear() error {
	return c.command("clear")
}

func (c *Client) DrawFrame(frame film.Screen) error {
	return c.rpc.Call(serviceName+".DrawFrame", &DrawFrameRequest{
		Rows: frame.Lines(),
	}, &EmptyResponse{})
}

func (c *Client) Close() error {
	return c.rpc.Close()
}

func (c *Client) command(name string) error {
	return c.rpc.Call(serviceName+".Command", name, &EmptyResponse{})
}
