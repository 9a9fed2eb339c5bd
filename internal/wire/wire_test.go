package wire_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"

	"venue-booking/internal/data/repository"
	"venue-booking/internal/wire"
	"venue-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type envelope struct {
	Status   bool            `json:"status"`
	Message  string          `json:"message"`
	Data     json.RawMessage `json:"data"`
	Redirect string          `json:"redirect"`
}

type funnelClient struct {
	t      *testing.T
	server *httptest.Server
	client *http.Client
	token  string
}

func newFunnelClient(t *testing.T) *funnelClient {
	t.Helper()

	repos, err := repository.NewRepository(zap.NewNop())
	require.NoError(t, err)

	config := &utils.Config{
		App:     utils.AppConfig{Name: "venue-booking", Port: "0"},
		Session: utils.SessionConfig{ExpiryHours: 1},
	}

	app := wire.Wiring(repos, config, zap.NewNop())
	server := httptest.NewServer(app.Router)
	t.Cleanup(server.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &funnelClient{
		t:      t,
		server: server,
		client: &http.Client{Jar: jar},
	}
}

func (c *funnelClient) do(method, path string, body any) (*http.Response, envelope) {
	c.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, c.server.URL+path, &buf)
	require.NoError(c.t, err)
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	require.NoError(c.t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(c.t, json.NewDecoder(resp.Body).Decode(&env))
	return resp, env
}

func (c *funnelClient) login(email, password string) {
	c.t.Helper()

	resp, env := c.do(http.MethodPost, "/api/login", map[string]string{
		"email":    email,
		"password": password,
	})
	require.Equal(c.t, http.StatusOK, resp.StatusCode)

	var data struct {
		Token string `json:"token"`
	}
	require.NoError(c.t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(c.t, data.Token)

	c.token = data.Token
}

func TestCheckout_WithoutVenueRedirectsToCatalog(t *testing.T) {
	c := newFunnelClient(t)

	resp, env := c.do(http.MethodGet, "/api/checkout", nil)

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "/api/venues", env.Redirect)
}

func TestCheckout_WithoutLoginRedirectsToLogin(t *testing.T) {
	c := newFunnelClient(t)

	venueID := repository.SeedVenues()[0].ID.String()
	resp, _ := c.do(http.MethodPost, "/api/booking/select", map[string]string{"venue_id": venueID})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = c.do(http.MethodPost, "/api/booking", map[string]any{
		"check_in":  "2026-05-01",
		"check_out": "2026-05-03",
		"time_slot": "19:00",
		"guests":    2,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, env := c.do(http.MethodGet, "/api/checkout", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "/api/login", env.Redirect)
}

func TestFunnel_EndToEnd(t *testing.T) {
	c := newFunnelClient(t)

	// Scheduling page before a venue is chosen: back to the catalog
	resp, env := c.do(http.MethodGet, "/api/booking", nil)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	require.Equal(t, "/api/venues", env.Redirect)

	// Select a venue
	venue := repository.SeedVenues()[0]
	resp, _ = c.do(http.MethodPost, "/api/booking/select", map[string]string{"venue_id": venue.ID.String()})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Submit the schedule
	resp, _ = c.do(http.MethodPost, "/api/booking", map[string]any{
		"check_in":  "2026-05-01",
		"check_out": "2026-05-03",
		"time_slot": "19:00",
		"guests":    2,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Authenticate and read the quote
	c.login("alex@example.com", "customer123")

	resp, env = c.do(http.MethodGet, "/api/checkout", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var quote struct {
		Nights     int     `json:"nights"`
		BaseTotal  float64 `json:"base_total"`
		FinalTotal float64 `json:"final_total"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &quote))
	base := venue.PricePerPerson * 2 * 2
	assert.Equal(t, 2, quote.Nights)
	assert.InDelta(t, base, quote.BaseTotal, 1e-9)
	assert.InDelta(t, base*1.15, quote.FinalTotal, 1e-9)

	// Confirm
	resp, env = c.do(http.MethodPost, "/api/checkout", nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var booking struct {
		Ref    string `json:"ref"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &booking))
	assert.Equal(t, "confirmed", booking.Status)

	// Confirmation page
	resp, _ = c.do(http.MethodGet, "/api/bookings/"+booking.Ref, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// The draft is fresh again, so checkout requires a new selection
	resp, env = c.do(http.MethodGet, "/api/checkout", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "/api/venues", env.Redirect)

	// The booking shows up under the profile bookings tab
	resp, env = c.do(http.MethodGet, "/api/profile?tab=bookings", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var profile struct {
		Tab      string            `json:"tab"`
		Bookings []json.RawMessage `json:"bookings"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &profile))
	assert.Len(t, profile.Bookings, 1)
}

func TestDashboards_RoleGated(t *testing.T) {
	c := newFunnelClient(t)

	// Anonymous
	resp, _ := c.do(http.MethodGet, "/api/admin/dashboard", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Customer is forbidden
	c.login("alex@example.com", "customer123")
	resp, _ = c.do(http.MethodGet, "/api/admin/dashboard", nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp, _ = c.do(http.MethodGet, "/api/manager/dashboard", nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// Admin sees the overview
	c.login("admin@example.com", "admin123")
	resp, env := c.do(http.MethodGet, "/api/admin/dashboard", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var dash struct {
		VenueCount int `json:"venue_count"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &dash))
	assert.Equal(t, len(repository.SeedVenues()), dash.VenueCount)

	// Manager sees only their venues
	c.login("sofia@example.com", "manager123")
	resp, env = c.do(http.MethodGet, "/api/manager/dashboard", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var mdash struct {
		Venues []json.RawMessage `json:"venues"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &mdash))
	assert.NotEmpty(t, mdash.Venues)
	assert.Less(t, len(mdash.Venues), len(repository.SeedVenues()))
}

func TestVenueFilters_OverHTTP(t *testing.T) {
	c := newFunnelClient(t)

	resp, env := c.do(http.MethodGet, "/api/venues?min_rating=4.8&sort=price_asc", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var page struct {
		Data []struct {
			Rating         float64 `json:"rating"`
			PricePerPerson float64 `json:"price_per_person"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &page))
	require.NotEmpty(t, page.Data)

	for i, v := range page.Data {
		assert.GreaterOrEqual(t, v.Rating, 4.8)
		if i > 0 {
			assert.LessOrEqual(t, page.Data[i-1].PricePerPerson, v.PricePerPerson)
		}
	}

	resp, env = c.do(http.MethodGet, fmt.Sprintf("/api/venues/%s", repository.SeedVenues()[0].ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var detail struct {
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &detail))
	assert.Equal(t, repository.SeedVenues()[0].Name, detail.Name)
}
