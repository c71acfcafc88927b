package websocket

// Message defines the structure for websocket messages pushed to dashboards.
type Message struct {
	Action  string      `json:"action"`
	Payload interface{} `json:"payload"`
}
