// Package client is the remote facade over the ledger HTTP API, meant for
// thin frontends such as chat bots.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Coca162/Denarius/internal/core/domain"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
}

// New builds a client for the service at baseURL. The default client times
// out after 5 seconds; pass your own with NewWithHTTPClient to change that.
func New(baseURL string) *Client {
	return NewWithHTTPClient(baseURL, &http.Client{Timeout: 5 * time.Second})
}

func NewWithHTTPClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// APIError is any non-2xx response, with the response body as the message.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d response: %s", e.StatusCode, e.Message)
}

// RegisterPerson creates an account for the discord id and returns its key.
func (c *Client) RegisterPerson(ctx context.Context, discordID uint64) (uuid.UUID, error) {
	body, err := c.do(ctx, http.MethodPost, "/person/register/"+strconv.FormatUint(discordID, 10), nil)
	if err != nil {
		return uuid.Nil, err
	}
	return uuid.Parse(string(body))
}

// AccountFromDiscord resolves a discord id to its account key.
func (c *Client) AccountFromDiscord(ctx context.Context, discordID uint64) (uuid.UUID, error) {
	body, err := c.do(ctx, http.MethodGet, "/person/from_discord/"+strconv.FormatUint(discordID, 10), nil)
	if err != nil {
		return uuid.Nil, err
	}
	return uuid.Parse(string(body))
}

// GetPerson fetches the discord id and balance bound to an account key.
func (c *Client) GetPerson(ctx context.Context, id uuid.UUID) (*domain.PersonInfo, error) {
	body, err := c.do(ctx, http.MethodGet, "/person/"+domain.FormatKey(id), nil)
	if err != nil {
		return nil, err
	}

	var info domain.PersonInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, fmt.Errorf("could not decode person info: %w", err)
	}
	return &info, nil
}

// GetBalance fetches and parses the formatted balance of an account.
func (c *Client) GetBalance(ctx context.Context, id uuid.UUID) (domain.Money, error) {
	body, err := c.do(ctx, http.MethodGet, "/eco/balance/"+domain.FormatKey(id), nil)
	if err != nil {
		return 0, err
	}
	return domain.ParseMoney(string(body))
}

// PrintMoney mints amount into the account.
func (c *Client) PrintMoney(ctx context.Context, id uuid.UUID, amount domain.Money) error {
	path := fmt.Sprintf("/eco/print/%s/%d", domain.FormatKey(id), int64(amount))
	_, err := c.do(ctx, http.MethodPost, path, nil)
	return err
}

// Payment transfers amount between the two accounts. The force flag is only
// sent when set, matching what the server expects from ordinary callers.
func (c *Client) Payment(ctx context.Context, from, to uuid.UUID, amount domain.Money, force bool) error {
	params := url.Values{}
	params.Set("to", domain.FormatKey(to))
	params.Set("from", domain.FormatKey(from))
	params.Set("amount", strconv.FormatInt(int64(amount), 10))
	if force {
		params.Set("force", "true")
	}

	_, err := c.do(ctx, http.MethodPost, "/eco/payment?"+params.Encode(), nil)
	return err
}

func (c *Client) do(ctx context.Context, method, path string, reqBody io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: string(body)}
	}

	return body, nil
}
