package room

import "padeltour-server/pkg/model"

// Response is a message sent to a websocket client
type Response struct {
	Key     string      `json:"key"`
	Value   string      `json:"value,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Context string      `json:"context,omitempty"`
}

// PayloadIn is the format we expect from a websocket client
type PayloadIn struct {
	Action string `json:"action"`
	// Context will be passed back on any outgoing message
	Context string `json:"context"`
}

// Snapshot is the full state of a tournament as seen by spectators
type Snapshot struct {
	Tournament *model.Tournament `json:"tournament"`
	Standings  *model.Standings  `json:"standings"`
}

func newSnapshotResponse(t *model.Tournament, ctx string) *Response {
	return &Response{
		Key: "tournament",
		Data: &Snapshot{
			Tournament: t,
			Standings:  t.Standings(),
		},
		Context: ctx,
	}
}

func newErrorResponse(ctx string, err error) *Response {
	return &Response{
		Key:     "error",
		Value:   err.Error(),
		Context: ctx,
	}
}
