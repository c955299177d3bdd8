package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// API is the outbound Bot API surface the dispatcher depends on.
type API interface {
	SendMessage(ctx context.Context, req *SendMessageRequest) error
	AnswerCallbackQuery(ctx context.Context, callbackQueryID string) error
	SetWebhook(ctx context.Context, webhookURL string) error
}

// Client talks to the Telegram Bot API over HTTP.
type Client struct {
	token      string
	baseURL    string
	httpClient *http.Client
}

const DefaultBaseURL = "https://api.telegram.org"

// NewClient creates a Bot API client. baseURL is overridable for tests and
// self-hosted Bot API servers; pass "" for the public endpoint.
func NewClient(token, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		token:      token,
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

func (c *Client) SendMessage(ctx context.Context, req *SendMessageRequest) error {
	return c.call(ctx, "sendMessage", req)
}

func (c *Client) AnswerCallbackQuery(ctx context.Context, callbackQueryID string) error {
	return c.call(ctx, "answerCallbackQuery", &answerCallbackQueryRequest{
		CallbackQueryID: callbackQueryID,
	})
}

func (c *Client) SetWebhook(ctx context.Context, webhookURL string) error {
	return c.call(ctx, "setWebhook", &setWebhookRequest{URL: webhookURL})
}

func (c *Client) call(ctx context.Context, method string, payload interface{}) error {
	payloadJson, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/bot%s/%s", c.baseURL, c.token, method)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(payloadJson))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf(
			"telegram %s: status error, got status %d. with response body %s",
			method,
			res.StatusCode,
			string(resBody),
		)
	}

	var apiRes apiResponse
	if err := json.Unmarshal(resBody, &apiRes); err != nil {
		return err
	}
	if !apiRes.Ok {
		return fmt.Errorf("telegram %s: api error: %s", method, apiRes.Description)
	}

	return nil
}
