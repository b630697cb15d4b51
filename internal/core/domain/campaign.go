package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	// NoLogo is stored in place of a missing token logo. Clients render it
	// as the generic placeholder image.
	NoLogo = "/placeholder.svg"
	// NoDescription replaces an empty token description.
	NoDescription = "No description available"

	// DefaultGoal is the standard Dexscreener listing fee in USD.
	DefaultGoal = 300
	// DefaultDuration is how long a campaign accepts contributions.
	DefaultDuration = 48 * time.Hour
)

// SocialLinks holds optional project links. An empty value means the link
// is not shown.
type SocialLinks struct {
	Twitter string `json:"twitter,omitempty" bson:"twitter,omitempty"`
	Website string `json:"website,omitempty" bson:"website,omitempty"`
}

// Campaign is a funding request for a token's exchange listing fee. Raised,
// Contributors and Status are written once at creation; later updates come
// from outside this service.
type Campaign struct {
	ID           primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	TokenAddress string             `json:"tokenAddress" bson:"tokenAddress"`
	Name         string             `json:"name" bson:"name"`
	Symbol       string             `json:"symbol" bson:"symbol"`
	Logo         string             `json:"logo" bson:"logo"`
	Description  string             `json:"description" bson:"description"`
	SocialLinks  SocialLinks        `json:"socialLinks" bson:"socialLinks"`
	MarketCap    string             `json:"marketCap" bson:"marketCap"`
	TotalSupply  string             `json:"totalSupply" bson:"totalSupply"`
	EscrowWallet string             `json:"escrowWallet" bson:"escrowWallet"`
	Raised       float64            `json:"raised" bson:"raised"`
	Goal         float64            `json:"goal" bson:"goal"`
	Contributors int64              `json:"contributors" bson:"contributors"`
	Status       Status             `json:"status" bson:"status"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	ExpiresAt    time.Time          `json:"expiresAt" bson:"expiresAt"`
	Replies      *int64             `json:"replies,omitempty" bson:"replies,omitempty"`
}

// TokenMetadata is the token description returned by the metadata
// provider. Field names follow the provider's JSON payload, which sends
// decimals either as a number or as a numeric string.
type TokenMetadata struct {
	Mint                 string      `json:"mint"`
	Standard             string      `json:"standard,omitempty"`
	Name                 string      `json:"name"`
	Symbol               string      `json:"symbol"`
	Logo                 string      `json:"logo,omitempty"`
	Decimals             json.Number `json:"decimals,omitempty"`
	FullyDilutedValue    string      `json:"fullyDilutedValue,omitempty"`
	TotalSupply          string      `json:"totalSupply,omitempty"`
	TotalSupplyFormatted string      `json:"totalSupplyFormatted,omitempty"`
	Links                SocialLinks `json:"links"`
	Description          string      `json:"description,omitempty"`
	IsVerifiedContract   bool        `json:"isVerifiedContract"`
	PossibleSpam         bool        `json:"possibleSpam"`
}

// CampaignParams carries the values a new campaign takes from deployment
// configuration rather than from the token.
type CampaignParams struct {
	Goal         float64
	Duration     time.Duration
	EscrowWallet string
}

// NewCampaign builds an active campaign for the token described by meta.
// Optional metadata fields are defaulted; a missing address, name or symbol
// is rejected with ErrInvalidCampaign.
func NewCampaign(meta TokenMetadata, p CampaignParams, now time.Time) (Campaign, error) {
	address := strings.TrimSpace(meta.Mint)
	if address == "" {
		return Campaign{}, fmt.Errorf("%w: token address is required", ErrInvalidCampaign)
	}
	name := strings.TrimSpace(meta.Name)
	symbol := strings.TrimSpace(meta.Symbol)
	if name == "" || symbol == "" {
		return Campaign{}, fmt.Errorf("%w: token name and symbol are required", ErrInvalidCampaign)
	}
	if !(p.Goal > 0) {
		return Campaign{}, fmt.Errorf("%w: %v", ErrInvalidGoal, p.Goal)
	}
	if p.Duration <= 0 {
		return Campaign{}, fmt.Errorf("%w: duration must be positive", ErrInvalidCampaign)
	}

	logo := strings.TrimSpace(meta.Logo)
	if logo == "" {
		logo = NoLogo
	}
	description := strings.TrimSpace(meta.Description)
	if description == "" {
		description = NoDescription
	}

	now = now.UTC()
	return Campaign{
		ID:           primitive.NewObjectIDFromTimestamp(now),
		TokenAddress: address,
		Name:         name,
		Symbol:       symbol,
		Logo:         logo,
		Description:  description,
		SocialLinks: SocialLinks{
			Twitter: strings.TrimSpace(meta.Links.Twitter),
			Website: strings.TrimSpace(meta.Links.Website),
		},
		MarketCap:    meta.FullyDilutedValue,
		TotalSupply:  meta.TotalSupplyFormatted,
		EscrowWallet: p.EscrowWallet,
		Raised:       0,
		Goal:         p.Goal,
		Contributors: 0,
		Status:       StatusActive,
		CreatedAt:    now,
		ExpiresAt:    now.Add(p.Duration),
	}, nil
}

// HasLogo reports whether the campaign carries a real token logo.
func (c Campaign) HasLogo() bool {
	return c.Logo != "" && c.Logo != NoLogo
}
