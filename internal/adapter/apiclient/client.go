package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"dexrooms/internal/config/configs"
	"dexrooms/internal/core/domain"
)

// Client reads campaigns from a running dexrooms API.
type Client struct {
	http *resty.Client
}

type campaignEnvelope struct {
	Campaign *domain.Campaign `json:"campaign"`
}

type errorEnvelope struct {
	Error string `json:"error"`
}

func New(cfg configs.Tracker) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(strings.TrimRight(cfg.APIURL, "/")).
			SetTimeout(cfg.Timeout).
			SetHeader("Accept", "application/json"),
	}
}

// Campaign fetches the stored campaign with the given id. HTTP 400 and 404
// map to domain.ErrInvalidIdentifier and domain.ErrNotFound.
func (c *Client) Campaign(ctx context.Context, id string) (*domain.Campaign, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("id", id).
		SetResult(&campaignEnvelope{}).
		SetError(&errorEnvelope{}).
		Get("/api/campaigns/{id}")
	if err != nil {
		return nil, fmt.Errorf("fetch campaign %s: %w", id, err)
	}

	switch resp.StatusCode() {
	case http.StatusOK:
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidIdentifier, id)
	case http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, id)
	default:
		msg := resp.Status()
		if e, ok := resp.Error().(*errorEnvelope); ok && e.Error != "" {
			msg = e.Error
		}
		return nil, fmt.Errorf("fetch campaign %s: %d %s", id, resp.StatusCode(), msg)
	}

	env, ok := resp.Result().(*campaignEnvelope)
	if !ok || env.Campaign == nil {
		return nil, fmt.Errorf("fetch campaign %s: empty response", id)
	}
	return env.Campaign, nil
}
