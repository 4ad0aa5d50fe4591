// Package router dispatches contract calls to typed handlers. Parameters and
// results travel as JSON.
package router

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/questx-lab/marketplace/pkg/errorx"
)

// Constructor is the function called once when a contract is deployed.
const Constructor = "constructor"

type HandlerFunc[Request, Response any] func(ctx context.Context, req *Request) (*Response, error)

// MiddlewareFunc runs before every handler of the router. It may replace the
// context or abort the call by returning an error.
type MiddlewareFunc func(ctx context.Context, function string) (context.Context, error)

type handler func(ctx context.Context, params json.RawMessage) (json.RawMessage, error)

type Router struct {
	name        string
	handlers    map[string]handler
	middlewares []MiddlewareFunc
}

func New(name string) *Router {
	return &Router{
		name:     name,
		handlers: make(map[string]handler),
	}
}

func Register[Request, Response any](r *Router, function string, h HandlerFunc[Request, Response]) {
	r.handlers[function] = wrapHandler(h)
}

func (r *Router) Use(middleware MiddlewareFunc) {
	r.middlewares = append(r.middlewares, middleware)
}

func (r *Router) Name() string {
	return r.name
}

func (r *Router) Has(function string) bool {
	_, ok := r.handlers[function]
	return ok
}

func (r *Router) Functions() []string {
	functions := make([]string, 0, len(r.handlers))
	for f := range r.handlers {
		functions = append(functions, f)
	}
	sort.Strings(functions)

	return functions
}

func (r *Router) Dispatch(ctx context.Context, function string, params json.RawMessage) (json.RawMessage, error) {
	h, ok := r.handlers[function]
	if !ok {
		return nil, errorx.New(errorx.NotFound, "Function %s does not exist in %s", function, r.name)
	}

	var err error
	for _, middleware := range r.middlewares {
		ctx, err = middleware(ctx, function)
		if err != nil {
			return nil, err
		}
	}

	return h(ctx, params)
}

func wrapHandler[Request, Response any](h HandlerFunc[Request, Response]) handler {
	return func(ctx context.Context, params json.RawMessage) (json.RawMessage, error) {
		var req Request
		if len(params) > 0 && string(params) != "null" {
			if err := json.Unmarshal(params, &req); err != nil {
				return nil, errorx.Wrap(errorx.BadRequest, err, "Invalid params")
			}
		}

		resp, err := h(ctx, &req)
		if err != nil {
			return nil, err
		}

		if resp == nil {
			return nil, nil
		}

		b, err := json.Marshal(resp)
		if err != nil {
			return nil, errorx.Wrap(errorx.Internal, err, "Cannot encode the response")
		}

		return b, nil
	}
}
