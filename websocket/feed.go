// file: websocket/feed.go
package websocket

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/atomic"
	"trading-cards-admin/logger"
	"trading-cards-admin/metrics"
	"trading-cards-admin/services"
)

// Feed serves the live pending-submission projection. Every client gets its
// own store subscription, released when the socket goes away.
type Feed struct {
	reviews services.ReviewServiceInterface
	metrics metrics.Publisher
	active  atomic.Int64
}

// NewFeed creates a feed over the review service.
func NewFeed(reviews services.ReviewServiceInterface, pub metrics.Publisher) *Feed {
	if pub == nil {
		pub = metrics.Nop{}
	}
	return &Feed{reviews: reviews, metrics: pub}
}

// Active reports how many clients are connected.
func (f *Feed) Active() int64 {
	return f.active.Load()
}

// Handler adapts ServeWs for the gin router.
func (f *Feed) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		f.ServeWs(c.Writer, c.Request)
	}
}

// ServeWs upgrades the request and streams pending snapshots until the client
// disconnects or the subscription fails.
func (f *Feed) ServeWs(w http.ResponseWriter, r *http.Request) {
	wsConn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// the upgrader has already replied to the client
		logger.Error.Printf("[Feed.ServeWs] WebSocket upgrade error: %v", err)
		return
	}
	logger.Info.Printf("[Feed.ServeWs] feed connected: %v", wsConn.RemoteAddr())

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	c := newConnection(wsConn)
	sub, err := f.reviews.SubscribePending(ctx)
	if err != nil {
		logger.Error.Printf("[Feed.ServeWs] subscribe failed: %v", err)
		c.queue(encodeError("live updates are unavailable: " + err.Error()))
		close(c.send)
		c.writePump()
		return
	}
	defer sub.Close()

	publishConnections(f.metrics, f.active.Inc())
	defer func() {
		publishConnections(f.metrics, f.active.Dec())
		logger.Info.Printf("[Feed.ServeWs] feed disconnected: %v", wsConn.RemoteAddr())
	}()

	go c.writePump()
	go f.forward(ctx, c, sub)
	c.readPump()
}

// forward turns subscription snapshots into feed frames. It is the only
// sender on c.send and closes it on exit, which ends the write pump.
func (f *Feed) forward(ctx context.Context, c *Connection, sub *services.Subscription) {
	defer close(c.send)
	for {
		select {
		case <-sub.Done():
			return
		case err := <-sub.Err():
			logger.Error.Printf("[Feed.forward] pending listener failed: %v", err)
			c.queue(encodeError(err.Error()))
			return
		case subs := <-sub.Updates():
			msg, err := encodePending(f.reviews.Enrich(ctx, subs))
			if err != nil {
				logger.Error.Printf("[Feed.forward] encode pending snapshot: %v", err)
				continue
			}
			c.queue(msg)
		}
	}
}
