// Package rpc serves the descriptor algebra over JSON-RPC 2.0.
//
// Parameters and results carry descriptors in their JSON form.  Errors
// from the algebra are returned as InvalidParams with the error text.
package rpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/signadot/shapealg"
	"github.com/signadot/shapealg/debug"
	"github.com/signadot/shapealg/desc"
	"github.com/signadot/shapealg/hier"
	"go.lsp.dev/jsonrpc2"
)

var ErrNoHierarchy = errors.New("no hierarchy")

type Server struct {
	joiner *hier.Joiner
	top    string
}

type ServerOpt func(*Server)

// WithHierarchy sets the hierarchy used by leastUpperBound requests that
// carry none.  Joins against it are memoised.
func WithHierarchy(h *hier.Hierarchy) ServerOpt {
	return func(s *Server) { s.joiner = hier.NewJoiner(h) }
}

func WithTop(name string) ServerOpt {
	return func(s *Server) { s.top = name }
}

func NewServer(opts ...ServerOpt) *Server {
	s := &Server{}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Serve answers requests on rwc until the peer goes away or ctx is done.
func (s *Server) Serve(ctx context.Context, rwc io.ReadWriteCloser) error {
	conn := jsonrpc2.NewConn(jsonrpc2.NewStream(rwc))
	conn.Go(ctx, jsonrpc2.ReplyHandler(s.Handle))
	select {
	case <-ctx.Done():
		conn.Close()
		<-conn.Done()
		return ctx.Err()
	case <-conn.Done():
	}
	if err := conn.Err(); err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrClosedPipe) {
		return err
	}
	return nil
}

func (s *Server) Handle(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	if debug.RPC() {
		debug.Logf("rpc %s %s\n", req.Method(), req.Params())
	}
	var (
		res any
		err error
	)
	switch req.Method() {
	case MethodAll:
		res, err = call(req, func(p *SeqParams) (any, error) {
			ok, err := shapealg.All(p.Seq)
			return &AllResult{All: ok}, err
		})
	case MethodSlice:
		res, err = call(req, func(p *SeqParams) (any, error) {
			return shapealg.Slice(p.Seq, p.N)
		})
	case MethodDrop:
		res, err = call(req, func(p *SeqParams) (any, error) {
			return shapealg.Drop(p.Seq, p.N)
		})
	case MethodExcludeIfBottom:
		res, err = call(req, func(p *PatternParams) (any, error) {
			if err := need(p.Actual, p.Pattern); err != nil {
				return nil, err
			}
			return shapealg.ExcludeIfBottom(p.Actual, p.Pattern, shapealg.LiteralBottomOnly(p.LiteralOnly))
		})
	case MethodNarrow:
		res, err = call(req, func(p *PatternParams) (any, error) {
			if err := need(p.Actual, p.Pattern); err != nil {
				return nil, err
			}
			return shapealg.Narrow(p.Actual, p.Pattern, shapealg.LiteralBottomOnly(p.LiteralOnly))
		})
	case MethodIntersectVariants:
		res, err = call(req, func(p *UnionParams) (any, error) {
			return shapealg.IntersectVariants(p.Union)
		})
	case MethodLeastUpperBound:
		res, err = call(req, s.leastUpperBound)
	default:
		return jsonrpc2.MethodNotFoundHandler(ctx, reply, req)
	}
	if err != nil {
		if debug.RPC() {
			debug.Logf("rpc %s: %v\n", req.Method(), err)
		}
		return reply(ctx, nil, jsonrpc2.NewError(jsonrpc2.InvalidParams, err.Error()))
	}
	return reply(ctx, res, nil)
}

func (s *Server) leastUpperBound(p *JoinParams) (any, error) {
	if err := need(p.A, p.B); err != nil {
		return nil, err
	}
	top := s.top
	if p.Top != "" {
		top = p.Top
	}
	opts := []shapealg.Opt{shapealg.WithTop(top)}
	if p.Hierarchy != nil {
		h, err := hier.FromParents(p.Hierarchy)
		if err != nil {
			return nil, err
		}
		return shapealg.LeastUpperBound(h, p.A, p.B, opts...)
	}
	if s.joiner == nil {
		return nil, ErrNoHierarchy
	}
	return shapealg.LeastUpperBound(nil, p.A, p.B, append(opts, shapealg.WithJoiner(s.joiner))...)
}

type params interface {
	SeqParams | PatternParams | UnionParams | JoinParams
}

func call[P params](req jsonrpc2.Request, f func(*P) (any, error)) (any, error) {
	p := new(P)
	if err := json.Unmarshal(req.Params(), p); err != nil {
		return nil, fmt.Errorf("%w: %w", desc.ErrBadJSON, err)
	}
	return f(p)
}

func need(ds ...*desc.Desc) error {
	for _, d := range ds {
		if d == nil {
			return fmt.Errorf("%w: missing descriptor", desc.ErrBadJSON)
		}
	}
	return nil
}
