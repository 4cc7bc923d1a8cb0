package rpc

import (
	"context"
	"io"

	"github.com/signadot/shapealg/desc"
	"go.lsp.dev/jsonrpc2"
)

type Client struct {
	conn jsonrpc2.Conn
}

// NewClient starts a connection on rwc.  The client only makes calls;
// requests from the peer are answered with MethodNotFound.
func NewClient(ctx context.Context, rwc io.ReadWriteCloser) *Client {
	conn := jsonrpc2.NewConn(jsonrpc2.NewStream(rwc))
	conn.Go(ctx, jsonrpc2.MethodNotFoundHandler)
	return &Client{conn: conn}
}

func (c *Client) Close() error {
	err := c.conn.Close()
	<-c.conn.Done()
	return err
}

func (c *Client) All(ctx context.Context, seq *desc.Desc) (bool, error) {
	res := &AllResult{}
	if _, err := c.conn.Call(ctx, MethodAll, &SeqParams{Seq: seq}, res); err != nil {
		return false, err
	}
	return res.All, nil
}

func (c *Client) Slice(ctx context.Context, seq *desc.Desc, n int) (*desc.Desc, error) {
	return c.desc(ctx, MethodSlice, &SeqParams{Seq: seq, N: n})
}

func (c *Client) Drop(ctx context.Context, seq *desc.Desc, n int) (*desc.Desc, error) {
	return c.desc(ctx, MethodDrop, &SeqParams{Seq: seq, N: n})
}

func (c *Client) ExcludeIfBottom(ctx context.Context, p *PatternParams) (*desc.Desc, error) {
	return c.desc(ctx, MethodExcludeIfBottom, p)
}

func (c *Client) Narrow(ctx context.Context, p *PatternParams) (*desc.Desc, error) {
	return c.desc(ctx, MethodNarrow, p)
}

func (c *Client) IntersectVariants(ctx context.Context, u *desc.Desc) (*desc.Desc, error) {
	return c.desc(ctx, MethodIntersectVariants, &UnionParams{Union: u})
}

func (c *Client) LeastUpperBound(ctx context.Context, p *JoinParams) (*desc.Desc, error) {
	return c.desc(ctx, MethodLeastUpperBound, p)
}

func (c *Client) desc(ctx context.Context, method string, params any) (*desc.Desc, error) {
	res := &desc.Desc{}
	if _, err := c.conn.Call(ctx, method, params, res); err != nil {
		return nil, err
	}
	return res, nil
}
