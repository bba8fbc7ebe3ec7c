// file: websocket/metrics.go
package websocket

import (
	"trading-cards-admin/metrics"
)

// publishConnections pushes the current live-feed connection count.
func publishConnections(pub metrics.Publisher, count int64) {
	pub.Count(metrics.LiveFeedConnections, float64(count))
}
