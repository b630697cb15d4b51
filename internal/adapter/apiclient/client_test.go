package apiclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"dexrooms/internal/config/configs"
	"dexrooms/internal/core/domain"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(configs.Tracker{APIURL: srv.URL + "/", Timeout: 2 * time.Second})
}

func TestCampaign(t *testing.T) {
	id := primitive.NewObjectID()
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/campaigns/"+id.Hex(), r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"campaign":{
			"_id":"`+id.Hex()+`",
			"tokenAddress":"FooMint",
			"name":"Foo",
			"symbol":"FOO",
			"raised":150,
			"goal":300,
			"contributors":3,
			"status":"active",
			"createdAt":"2025-06-01T12:00:00Z",
			"expiresAt":"2025-06-03T12:00:00Z"
		}}`)
	})

	got, err := c.Campaign(context.Background(), id.Hex())
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, 150.0, got.Raised)
	assert.Equal(t, int64(3), got.Contributors)
	assert.Equal(t, domain.StatusActive, got.Status)
	assert.True(t, got.ExpiresAt.Equal(time.Date(2025, 6, 3, 12, 0, 0, 0, time.UTC)))
}

func TestCampaignErrors(t *testing.T) {
	cases := []struct {
		name   string
		status int
		want   error
	}{
		{"bad id", http.StatusBadRequest, domain.ErrInvalidIdentifier},
		{"missing", http.StatusNotFound, domain.ErrNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tc.status)
				_, _ = io.WriteString(w, `{"error":"nope"}`)
			})
			_, err := c.Campaign(context.Background(), "abc")
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestCampaignServerError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, `{"error":"Failed to fetch campaign"}`)
	})

	_, err := c.Campaign(context.Background(), "abc")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "Failed to fetch campaign")
}
