package reader

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/NewsReader/internal/domain"
)

// Fetch is an issued but not yet executed fetch. Run it on any goroutine and
// hand the Result back to Controller.Complete.
type Fetch struct {
	ticket  Ticket
	req     domain.ProxyRequest
	gateway domain.NewsGateway
}

func (f Fetch) Request() domain.ProxyRequest {
	return f.req
}

// Result is the outcome of one Fetch.
type Result struct {
	Ticket   Ticket
	Articles []domain.Article
	Err      error
}

// Run performs the request. A panicking gateway is reported as a failed fetch.
func (f Fetch) Run(ctx context.Context) (res Result) {
	res.Ticket = f.ticket
	defer func() {
		if r := recover(); r != nil {
			res.Articles = nil
			res.Err = fmt.Errorf("unexpected failure: %v", r)
		}
	}()
	res.Articles, res.Err = f.gateway.Fetch(ctx, f.req)
	return res
}

// Controller owns the current State and serialises transitions. Every query
// change issues exactly one fetch.
type Controller struct {
	gateway domain.NewsGateway

	mu    sync.Mutex
	state State
}

func NewController(gateway domain.NewsGateway) *Controller {
	return &Controller{gateway: gateway, state: NewState()}
}

// State returns the current snapshot.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Refresh re-issues a fetch for the current query. Used for the initial load.
func (c *Controller) Refresh() (State, Fetch) {
	return c.transition(func(q Query) Query { return q })
}

func (c *Controller) Search(term string) (State, Fetch) {
	return c.transition(func(q Query) Query { return HandleSearch(q, term) })
}

func (c *Controller) SelectCategory(category string) (State, Fetch) {
	return c.transition(func(q Query) Query { return HandleCategoryChange(q, category) })
}

// Complete applies a fetch result and returns the resulting snapshot.
func (c *Controller) Complete(res Result) State {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.state.IsCurrent(res.Ticket) {
		slog.Debug("Discarding stale fetch result")
		return c.state
	}
	if res.Err != nil {
		slog.Warn("Fetch error", "query", c.state.Query.SearchTerm, "category", c.state.Query.Category, "error", res.Err)
	}
	c.state = c.state.CompleteFetch(res.Ticket, res.Articles, res.Err)
	return c.state
}

// Wait runs f on the calling goroutine and applies its result.
func (c *Controller) Wait(ctx context.Context, f Fetch) State {
	return c.Complete(f.Run(ctx))
}

func (c *Controller) transition(next func(Query) Query) (State, Fetch) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, ticket := c.state.WithQuery(next(c.state.Query)).BeginFetch()
	c.state = s
	return s, Fetch{ticket: ticket, req: s.Query.Request(), gateway: c.gateway}
}
