package httpadapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"dexrooms/internal/core/domain"
	"dexrooms/internal/core/port/mocks"
	"dexrooms/internal/metrics"
)

func newTestHandler(t *testing.T) (*mocks.MockCampaignUseCase, http.Handler) {
	t.Helper()
	svc := mocks.NewMockCampaignUseCase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewHandler(svc, logger, metrics.New(prometheus.NewRegistry()))
	return svc, h.Router()
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error
}

func TestGetCampaign(t *testing.T) {
	svc, h := newTestHandler(t)

	c := &domain.Campaign{
		ID:        primitive.NewObjectID(),
		Name:      "Foo",
		Symbol:    "FOO",
		Logo:      domain.NoLogo,
		Goal:      300,
		Status:    domain.StatusActive,
		ExpiresAt: time.Date(2025, 6, 3, 12, 0, 0, 0, time.UTC),
	}
	svc.EXPECT().GetCampaign(mock.Anything, c.ID.Hex()).Return(c, nil)

	rec := do(t, h, http.MethodGet, "/api/campaigns/"+c.ID.Hex(), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Header().Get(requestIDHeader))

	var body struct {
		Campaign map[string]any `json:"campaign"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, c.ID.Hex(), body.Campaign["_id"])
	assert.NotContains(t, body.Campaign, "id")
	assert.Equal(t, "FOO", body.Campaign["symbol"])
	assert.Equal(t, "active", body.Campaign["status"])
	assert.Equal(t, 300.0, body.Campaign["goal"])
}

func TestGetCampaignErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{"invalid id", domain.ErrInvalidIdentifier, http.StatusBadRequest, "Invalid campaign ID"},
		{"not found", domain.ErrNotFound, http.StatusNotFound, "Campaign not found"},
		{"store", errors.Join(domain.ErrStoreFailure, errors.New("connection reset by 10.0.0.3")), http.StatusInternalServerError, "Failed to fetch campaign"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, h := newTestHandler(t)
			svc.EXPECT().GetCampaign(mock.Anything, "not-a-valid-id").Return(nil, tc.err)

			rec := do(t, h, http.MethodGet, "/api/campaigns/not-a-valid-id", "")
			assert.Equal(t, tc.code, rec.Code)
			assert.Equal(t, tc.msg, decodeError(t, rec))
			assert.NotContains(t, rec.Body.String(), "10.0.0.3")
		})
	}
}

func TestListCampaigns(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().
		ListCampaigns(mock.Anything, domain.Filter{Query: "foo", Status: domain.StatusCompleted}).
		Return([]domain.Campaign{{ID: primitive.NewObjectID(), Symbol: "FOO"}}, nil)

	rec := do(t, h, http.MethodGet, "/api/campaigns?q=foo&status=completed", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Campaigns []domain.Campaign `json:"campaigns"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Campaigns, 1)
	assert.Equal(t, "FOO", body.Campaigns[0].Symbol)
}

func TestListCampaignsEmptyIsArray(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().ListCampaigns(mock.Anything, domain.Filter{}).Return(nil, nil)

	rec := do(t, h, http.MethodGet, "/api/campaigns?status=all", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"campaigns":[]}`, rec.Body.String())
}

func TestListCampaignsBadStatus(t *testing.T) {
	_, h := newTestHandler(t)
	rec := do(t, h, http.MethodGet, "/api/campaigns?status=paused", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListCampaignsStoreFailure(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().ListCampaigns(mock.Anything, domain.Filter{}).Return(nil, domain.ErrStoreFailure)

	rec := do(t, h, http.MethodGet, "/api/campaigns", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to fetch campaigns", decodeError(t, rec))
}

func TestCreateCampaignByAddress(t *testing.T) {
	svc, h := newTestHandler(t)
	id := primitive.NewObjectID()
	svc.EXPECT().CreateCampaign(mock.Anything, "FooMint").Return(id, nil)

	rec := do(t, h, http.MethodPost, "/api/campaigns", `{"tokenAddress":"FooMint"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"campaignId":"`+id.Hex()+`"}`, rec.Body.String())
}

func TestCreateCampaignFromTokenData(t *testing.T) {
	svc, h := newTestHandler(t)
	id := primitive.NewObjectID()
	svc.EXPECT().
		CreateCampaignFromMetadata(mock.Anything, mock.MatchedBy(func(m domain.TokenMetadata) bool {
			return m.Mint == "FooMint" && m.Name == "Foo" && m.Logo == ""
		})).
		Return(id, nil)

	rec := do(t, h, http.MethodPost, "/api/campaigns",
		`{"tokenData":{"mint":"FooMint","name":"Foo","symbol":"FOO","logo":null,"links":{}}}`)
	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateCampaignNumericDecimals(t *testing.T) {
	for _, decimals := range []string{`9`, `"9"`} {
		t.Run(decimals, func(t *testing.T) {
			svc, h := newTestHandler(t)
			svc.EXPECT().
				CreateCampaignFromMetadata(mock.Anything, mock.MatchedBy(func(m domain.TokenMetadata) bool {
					return m.Decimals.String() == "9"
				})).
				Return(primitive.NewObjectID(), nil)

			rec := do(t, h, http.MethodPost, "/api/campaigns",
				`{"tokenData":{"mint":"FooMint","name":"Foo","symbol":"FOO","decimals":`+decimals+`}}`)
			assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		})
	}
}

func TestCreateCampaignErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"validation", errors.Join(domain.ErrInvalidCampaign, errors.New("token name and symbol are required")), http.StatusBadRequest},
		{"duplicate", domain.ErrDuplicateCampaign, http.StatusConflict},
		{"metadata", domain.ErrMetadataUnavailable, http.StatusBadGateway},
		{"store", domain.ErrStoreFailure, http.StatusInternalServerError},
		{"configured goal", fmt.Errorf("%w: 0", domain.ErrInvalidGoal), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, h := newTestHandler(t)
			svc.EXPECT().CreateCampaign(mock.Anything, "FooMint").Return(primitive.NilObjectID, tc.err)

			rec := do(t, h, http.MethodPost, "/api/campaigns", `{"tokenAddress":"FooMint"}`)
			assert.Equal(t, tc.code, rec.Code)
			assert.NotEmpty(t, decodeError(t, rec))
		})
	}
}

func TestCreateCampaignBadRequests(t *testing.T) {
	_, h := newTestHandler(t)

	rec := do(t, h, http.MethodPost, "/api/campaigns", `{`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/campaigns", `{"tokenAddress":"   "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Token address is required", decodeError(t, rec))
}

func TestPreviewToken(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().PreviewToken(mock.Anything, "FooMint").
		Return(&domain.TokenMetadata{Mint: "FooMint", Name: "Foo", Symbol: "FOO"}, nil)
	svc.EXPECT().PreviewToken(mock.Anything, "Nope").
		Return(nil, domain.ErrMetadataUnavailable)

	rec := do(t, h, http.MethodGet, "/api/tokens/FooMint", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"symbol":"FOO"`)

	rec = do(t, h, http.MethodGet, "/api/tokens/Nope", "")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestHealthAndMetrics(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().GetCampaign(mock.Anything, "x").Return(nil, domain.ErrInvalidIdentifier)
	_ = do(t, h, http.MethodGet, "/api/campaigns/x", "")

	rec := do(t, h, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())

	rec = do(t, h, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `dexrooms_http_requests_total{code="400",method="GET",route="/api/campaigns/{id}"} 1`)
}
