package restapi

import (
	"context"

	"github.com/gin-gonic/gin"
	jsoniter "github.com/json-iterator/go"
	"github.com/r3labs/sse/v2"

	"ton_portfolio/internal/app/port"
)

// ViewStream is the SSE stream id carrying view snapshots.
const ViewStream = "view"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// EventPublisher pushes every view change to SSE clients.
type EventPublisher struct {
	server  *sse.Server
	session port.SessionService
	logger  port.Logger
}

// NewEventPublisher creates the SSE server with the view stream.
func NewEventPublisher(session port.SessionService, logger port.Logger) *EventPublisher {
	server := sse.New()
	server.AutoReplay = false
	server.CreateStream(ViewStream)
	return &EventPublisher{server: server, session: session, logger: logger}
}

// Run forwards view updates until ctx is done, then closes the SSE server.
func (p *EventPublisher) Run(ctx context.Context) error {
	updates, cancel := p.session.Subscribe()
	defer cancel()
	defer p.server.Close()

	for {
		select {
		case <-ctx.Done():
			return nil
		case view, ok := <-updates:
			if !ok {
				return nil
			}
			data, err := json.Marshal(view)
			if err != nil {
				p.logger.Error("Failed to encode view event", "error", err)
				continue
			}
			p.server.Publish(ViewStream, &sse.Event{Event: []byte("view"), Data: data})
		}
	}
}

// Handler streams view events. Clients read GET /api/v1/view for the
// state at connection time.
func (p *EventPublisher) Handler(c *gin.Context) {
	q := c.Request.URL.Query()
	q.Set("stream", ViewStream)
	c.Request.URL.RawQuery = q.Encode()

	p.server.ServeHTTP(c.Writer, c.Request)
}
