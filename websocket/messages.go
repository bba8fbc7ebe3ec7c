// file: websocket/messages.go
package websocket

import (
	"encoding/json"

	"trading-cards-admin/models"
)

// Feed actions sent to the dashboard.
const (
	ActionPending = "pendingSubmissions"
	ActionError   = "feedError"
)

// FeedMessage is the JSON frame written to feed clients.
type FeedMessage struct {
	Action      string               `json:"action"`
	Submissions []models.PendingView `json:"submissions,omitempty"`
	Count       int                  `json:"count"`
	Error       string               `json:"error,omitempty"`
}

func encodePending(views []models.PendingView) ([]byte, error) {
	if views == nil {
		views = []models.PendingView{}
	}
	return json.Marshal(FeedMessage{Action: ActionPending, Submissions: views, Count: len(views)})
}

func encodeError(msg string) []byte {
	// a struct of plain strings cannot fail to marshal
	out, _ := json.Marshal(FeedMessage{Action: ActionError, Error: msg})
	return out
}
