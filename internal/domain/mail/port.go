package mail

import "context"

// Message is one outgoing report email. The sender identity is fixed by the
// dispatcher configuration; only the recipient varies per send.
type Message struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// Result mirrors the dispatch service contract. A failed or rejected call
// never surfaces as an error to the caller; it becomes {Success: false}
// with a generic retry message.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Dispatcher port (interface for the transactional email service).
type Dispatcher interface {
	Send(ctx context.Context, msg Message) Result
}
