package moralis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-resty/resty/v2"
	"github.com/patrickmn/go-cache"
	"go.uber.org/ratelimit"

	"dexrooms/internal/config/configs"
	"dexrooms/internal/core/domain"
	"dexrooms/internal/metrics"
)

const metadataPath = "/token/{network}/{address}/metadata"

// Client implements port.TokenMetadataProvider against the Moralis Solana
// gateway. Lookups are rate limited, retried on transient failures and
// cached per address.
type Client struct {
	http        *resty.Client
	network     string
	limiter     ratelimit.Limiter
	cache       *cache.Cache
	retryWindow time.Duration
	metrics     *metrics.Metrics
	logger      *slog.Logger
}

// payload mirrors the gateway's metadata response. Decimals is sometimes
// sent as a number and sometimes as a string.
type payload struct {
	Mint                 string      `json:"mint"`
	Standard             string      `json:"standard"`
	Name                 string      `json:"name"`
	Symbol               string      `json:"symbol"`
	Logo                 string      `json:"logo"`
	Decimals             json.Number `json:"decimals"`
	FullyDilutedValue    string      `json:"fullyDilutedValue"`
	TotalSupply          string      `json:"totalSupply"`
	TotalSupplyFormatted string      `json:"totalSupplyFormatted"`
	Links                struct {
		Twitter string `json:"twitter"`
		Website string `json:"website"`
	} `json:"links"`
	Description        string `json:"description"`
	IsVerifiedContract bool   `json:"isVerifiedContract"`
	PossibleSpam       bool   `json:"possibleSpam"`
}

// NewClient builds a client from cfg. m may be nil.
func NewClient(cfg configs.Moralis, m *metrics.Metrics, logger *slog.Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")
	if cfg.APIKey != "" {
		httpClient.SetHeader("X-API-Key", cfg.APIKey)
	}

	network := cfg.Network
	if network == "" {
		network = "mainnet"
	}
	rate := cfg.RatePerSecond
	if rate <= 0 {
		rate = 1
	}

	return &Client{
		http:        httpClient,
		network:     network,
		limiter:     ratelimit.New(rate),
		cache:       cache.New(cfg.CacheTTL, 2*cfg.CacheTTL),
		retryWindow: cfg.RetryWindow,
		metrics:     m,
		logger:      logger,
	}
}

// TokenMetadata returns metadata for address. Any failure, including a
// payload without name and symbol, is reported as
// domain.ErrMetadataUnavailable.
func (c *Client) TokenMetadata(ctx context.Context, address string) (*domain.TokenMetadata, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, fmt.Errorf("%w: empty address", domain.ErrMetadataUnavailable)
	}

	if v, ok := c.cache.Get(address); ok {
		c.metrics.MetadataLookup("hit")
		meta := v.(domain.TokenMetadata)
		return &meta, nil
	}

	var p *payload
	err := backoff.RetryNotify(func() error {
		var err error
		p, err = c.fetch(ctx, address)
		return err
	}, backoff.WithContext(c.backOff(), ctx), func(err error, next time.Duration) {
		c.logger.Warn("token metadata lookup failed, retrying",
			slog.String("address", address),
			slog.Duration("next", next),
			slog.Any("error", err))
	})
	if err != nil {
		c.metrics.MetadataLookup("error")
		return nil, fmt.Errorf("%w: %w", domain.ErrMetadataUnavailable, err)
	}

	meta, err := toMetadata(address, p)
	if err != nil {
		c.metrics.MetadataLookup("error")
		return nil, err
	}
	c.metrics.MetadataLookup("fetched")
	c.cache.SetDefault(address, meta)
	return &meta, nil
}

func (c *Client) backOff() backoff.BackOff {
	if c.retryWindow <= 0 {
		return &backoff.StopBackOff{}
	}
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 200 * time.Millisecond
	b.MaxElapsedTime = c.retryWindow
	return b
}

// fetch performs one rate limited request. Client errors other than 429
// are permanent.
func (c *Client) fetch(ctx context.Context, address string) (*payload, error) {
	c.limiter.Take()
	if err := ctx.Err(); err != nil {
		return nil, backoff.Permanent(err)
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParams(map[string]string{
			"network": c.network,
			"address": address,
		}).
		SetResult(&payload{}).
		ForceContentType("application/json").
		Get(metadataPath)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, backoff.Permanent(err)
		}
		return nil, err
	}

	if !resp.IsSuccess() {
		err = fmt.Errorf("metadata request for %s returned %d", address, resp.StatusCode())
		if resp.StatusCode() < http.StatusInternalServerError && resp.StatusCode() != http.StatusTooManyRequests {
			return nil, backoff.Permanent(err)
		}
		return nil, err
	}

	p, ok := resp.Result().(*payload)
	if !ok || p == nil {
		return nil, backoff.Permanent(errors.New("failed to parse metadata response"))
	}
	return p, nil
}

func toMetadata(address string, p *payload) (domain.TokenMetadata, error) {
	if strings.TrimSpace(p.Name) == "" || strings.TrimSpace(p.Symbol) == "" {
		return domain.TokenMetadata{}, fmt.Errorf("%w: %s has no name or symbol", domain.ErrMetadataUnavailable, address)
	}
	mint := p.Mint
	if mint == "" {
		mint = address
	}
	return domain.TokenMetadata{
		Mint:                 mint,
		Standard:             p.Standard,
		Name:                 p.Name,
		Symbol:               p.Symbol,
		Logo:                 p.Logo,
		Decimals:             p.Decimals,
		FullyDilutedValue:    p.FullyDilutedValue,
		TotalSupply:          p.TotalSupply,
		TotalSupplyFormatted: p.TotalSupplyFormatted,
		Links: domain.SocialLinks{
			Twitter: p.Links.Twitter,
			Website: p.Links.Website,
		},
		Description:        p.Description,
		IsVerifiedContract: p.IsVerifiedContract,
		PossibleSpam:       p.PossibleSpam,
	}, nil
}
