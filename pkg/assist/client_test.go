package assist

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuinmax/verandaplanner/pkg/config"
)

func serveConfig(t *testing.T, mutate func(*config.Configuration)) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cfg := config.Default()
		if mutate != nil {
			mutate(&cfg)
		}
		err := json.NewEncoder(w).Encode(response{Config: &cfg, Changes: []string{config.FieldWidth}})
		assert.NoError(t, err)
	}))
}

func TestInterpretAppliesServiceResponse(t *testing.T) {
	var got request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		cfg := config.Default()
		cfg.Width = 7
		require.NoError(t, json.NewEncoder(w).Encode(response{Config: &cfg, Changes: []string{config.FieldWidth}}))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key")
	res, applied := c.Interpret(context.Background(), "seven wide", nil)

	require.True(t, applied)
	assert.Equal(t, 7.0, res.Config.Width)
	assert.Equal(t, []string{config.FieldWidth}, res.Changes)

	assert.Equal(t, "seven wide", got.Text)
	_, err := uuid.Parse(got.RequestID)
	assert.NoError(t, err, "request id must be a valid uuid")
}

func TestInterpretCarriesRecentHistory(t *testing.T) {
	var histories [][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req request
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		histories = append(histories, req.History)
		cfg := config.Default()
		require.NoError(t, json.NewEncoder(w).Encode(response{Config: &cfg}))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	ctx := context.Background()
	c.Interpret(ctx, "first", nil)
	c.Interpret(ctx, "second", nil)
	c.Interpret(ctx, "third", nil)

	require.Len(t, histories, 3)
	assert.Empty(t, histories[0])
	assert.Equal(t, []string{"first"}, histories[1])
	assert.Equal(t, []string{"first", "second"}, histories[2], "history holds at most the last two turns")
}

func TestInterpretFallsBackOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	res, applied := c.Interpret(context.Background(), "I want a six glass veranda", nil)

	require.True(t, applied, "a fallback result still counts as this turn's answer")
	assert.Equal(t, config.GlassSixfold, res.Config.Sides.Front.GlassType,
		"local interpreter must take over when the service fails")
}

func TestInterpretFallsBackOnStructuredFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewEncoder(w).Encode(response{Error: "could not parse intent"}))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	res, applied := c.Interpret(context.Background(), "make it black", nil)

	require.True(t, applied)
	assert.Equal(t, config.MetalBlack, res.Config.MetalMaterial)
}

func TestInterpretSanitizesServiceOutput(t *testing.T) {
	srv := serveConfig(t, func(cfg *config.Configuration) {
		cfg.Width = 99
		cfg.MetalMaterial = "chartreuse"
		cfg.Sides.Front.Material = config.WallWood
	})
	defer srv.Close()

	c := NewClient(srv.URL, "")
	res, applied := c.Interpret(context.Background(), "anything", nil)

	require.True(t, applied)
	assert.Equal(t, config.MaxWidth, res.Config.Width)
	assert.Equal(t, config.MetalAnthracite, res.Config.MetalMaterial)
	assert.Equal(t, config.WallGlass, res.Config.Sides.Front.Material)
}

func TestStaleResponseNeverOverwritesNewer(t *testing.T) {
	firstArrived := make(chan struct{})
	releaseFirst := make(chan struct{})
	var calls int
	var mu sync.Mutex

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		calls++
		n := calls
		mu.Unlock()

		if n == 1 {
			close(firstArrived)
			<-releaseFirst
		}
		cfg := config.Default()
		cfg.Width = float64(3 + n)
		require.NoError(t, json.NewEncoder(w).Encode(response{Config: &cfg}))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	ctx := context.Background()

	var wg sync.WaitGroup
	var firstApplied bool
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, firstApplied = c.Interpret(ctx, "slow turn", nil)
	}()

	<-firstArrived
	_, secondApplied := c.Interpret(ctx, "fast turn", nil)
	close(releaseFirst)
	wg.Wait()

	assert.True(t, secondApplied)
	assert.False(t, firstApplied, "the slow response must be discarded once a newer turn was applied")
}

func TestInterpretFallsBackOnUnreachableService(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", "")
	res, applied := c.Interpret(context.Background(), "large veranda", nil)

	require.True(t, applied)
	assert.Equal(t, 6.0, res.Config.Width)
}
