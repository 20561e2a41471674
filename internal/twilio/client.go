// Package twilio is a minimal Conversations API client: find-or-create a
// named conversation, manage SMS participants, send a message. Plain
// net/http with form-encoded requests; no SDK.
package twilio

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// ConversationsAPI is the capability surface the notification dispatcher
// depends on.
type ConversationsAPI interface {
	FindOrCreateConversation(ctx context.Context, uniqueName, friendlyName string) (*Conversation, error)
	ListParticipants(ctx context.Context, conversationSID string) ([]Participant, error)
	AddParticipant(ctx context.Context, conversationSID, address, proxyAddress string) error
	SendMessage(ctx context.Context, conversationSID, body string) (*Message, error)
}

// Config for the Twilio client.
type Config struct {
	AccountSID string        // if empty, falls back to env TWILIO_ACCOUNT_SID
	AuthToken  string        // if empty, falls back to env TWILIO_AUTH_TOKEN
	BaseURL    string        // default https://conversations.twilio.com/v1
	Timeout    time.Duration // http client timeout
}

type Client struct {
	cfg    Config
	http   *http.Client
	logger *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) (*Client, error) {
	if cfg.AccountSID == "" {
		cfg.AccountSID = os.Getenv("TWILIO_ACCOUNT_SID")
	}
	if cfg.AuthToken == "" {
		cfg.AuthToken = os.Getenv("TWILIO_AUTH_TOKEN")
	}
	if cfg.AccountSID == "" || cfg.AuthToken == "" {
		return nil, fmt.Errorf("twilio credentials missing")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://conversations.twilio.com/v1"
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}, nil
}

type Conversation struct {
	SID          string `json:"sid"`
	UniqueName   string `json:"unique_name"`
	FriendlyName string `json:"friendly_name"`
}

type Participant struct {
	SID              string `json:"sid"`
	MessagingBinding struct {
		Address      string `json:"address"`
		ProxyAddress string `json:"proxy_address"`
	} `json:"messaging_binding"`
}

type Message struct {
	SID   string `json:"sid"`
	Body  string `json:"body"`
	Index int    `json:"index"`
}

type apiError struct {
	Code     int    `json:"code"`
	Message  string `json:"message"`
	MoreInfo string `json:"more_info"`
	Status   int    `json:"status"`
}

// HTTPError carries the decoded Twilio error body alongside the status.
type HTTPError struct {
	StatusCode int
	Body       string
	APIError   *apiError
}

func (e *HTTPError) Error() string {
	if e == nil {
		return "twilio: <nil error>"
	}
	if e.APIError != nil && strings.TrimSpace(e.APIError.Message) != "" {
		if e.APIError.Code != 0 {
			return fmt.Sprintf("twilio http %d: %s (code=%d)", e.StatusCode, e.APIError.Message, e.APIError.Code)
		}
		return fmt.Sprintf("twilio http %d: %s", e.StatusCode, e.APIError.Message)
	}
	msg := strings.TrimSpace(e.Body)
	if msg == "" {
		msg = "<empty body>"
	}
	return fmt.Sprintf("twilio http %d: %s", e.StatusCode, msg)
}

// FindOrCreateConversation fetches the conversation by unique name and
// creates it on 404.
func (c *Client) FindOrCreateConversation(ctx context.Context, uniqueName, friendlyName string) (*Conversation, error) {
	conv, err := doJSON[Conversation](c, ctx, http.MethodGet,
		c.cfg.BaseURL+"/Conversations/"+url.PathEscape(uniqueName), nil)
	if err == nil {
		c.logger.Debug("twilio.conversation.found", "sid", conv.SID, "unique_name", uniqueName)
		return conv, nil
	}
	var he *HTTPError
	if !errors.As(err, &he) || he.StatusCode != http.StatusNotFound {
		return nil, err
	}

	form := url.Values{}
	form.Set("UniqueName", uniqueName)
	form.Set("FriendlyName", friendlyName)
	conv, err = doJSON[Conversation](c, ctx, http.MethodPost, c.cfg.BaseURL+"/Conversations", form)
	if err != nil {
		return nil, err
	}
	c.logger.Info("twilio.conversation.created", "sid", conv.SID, "unique_name", uniqueName)
	return conv, nil
}

func (c *Client) ListParticipants(ctx context.Context, conversationSID string) ([]Participant, error) {
	type page struct {
		Participants []Participant `json:"participants"`
	}
	p, err := doJSON[page](c, ctx, http.MethodGet,
		c.cfg.BaseURL+"/Conversations/"+url.PathEscape(conversationSID)+"/Participants", nil)
	if err != nil {
		return nil, err
	}
	return p.Participants, nil
}

func (c *Client) AddParticipant(ctx context.Context, conversationSID, address, proxyAddress string) error {
	form := url.Values{}
	form.Set("MessagingBinding.Address", address)
	form.Set("MessagingBinding.ProxyAddress", proxyAddress)
	_, err := doJSON[Participant](c, ctx, http.MethodPost,
		c.cfg.BaseURL+"/Conversations/"+url.PathEscape(conversationSID)+"/Participants", form)
	return err
}

func (c *Client) SendMessage(ctx context.Context, conversationSID, body string) (*Message, error) {
	form := url.Values{}
	form.Set("Body", body)
	return doJSON[Message](c, ctx, http.MethodPost,
		c.cfg.BaseURL+"/Conversations/"+url.PathEscape(conversationSID)+"/Messages", form)
}

func doJSON[T any](c *Client, ctx context.Context, method, urlStr string, form url.Values) (*T, error) {
	var reqBody io.Reader
	if form != nil {
		reqBody = strings.NewReader(form.Encode())
	}
	req, err := http.NewRequestWithContext(ctx, method, urlStr, reqBody)
	if err != nil {
		return nil, err
	}
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(c.cfg.AccountSID, c.cfg.AuthToken)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	raw, readErr := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if readErr != nil {
		return nil, readErr
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var ae apiError
		if json.Unmarshal(raw, &ae) == nil && strings.TrimSpace(ae.Message) != "" {
			return nil, &HTTPError{StatusCode: resp.StatusCode, Body: string(raw), APIError: &ae}
		}
		return nil, &HTTPError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var out T
	if len(raw) == 0 {
		return &out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("twilio decode error: %w", err)
	}
	return &out, nil
}
