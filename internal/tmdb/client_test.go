package tmdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahullath/serializd-ai/internal/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(config.TMDBConfig{
		APIKey:          "test-key",
		BaseURL:         srv.URL,
		RequestInterval: time.Millisecond,
	})
}

func TestSearchTV(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/tv", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		assert.Equal(t, "Severance", r.URL.Query().Get("query"))
		assert.Equal(t, "2022", r.URL.Query().Get("first_air_date_year"))
		w.Write([]byte(`{"page":1,"results":[{"id":95396,"name":"Severance","genre_ids":[18,9648]},{"id":1,"name":"Other"}]}`))
	})

	show, err := c.SearchTV(context.Background(), "Severance", 2022)
	require.NoError(t, err)
	require.NotNil(t, show)
	assert.Equal(t, 95396, show.ID)
	assert.Equal(t, []int{18, 9648}, show.GenreIDs)
}

func TestSearchTV_NoResults(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.Query().Get("first_air_date_year"))
		w.Write([]byte(`{"page":1,"results":[]}`))
	})

	show, err := c.SearchTV(context.Background(), "Nothing", 0)
	require.NoError(t, err)
	assert.Nil(t, show)
}

func TestGetTVDetail(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tv/95396", r.URL.Path)
		w.Write([]byte(`{"id":95396,"name":"Severance","number_of_seasons":2,"number_of_episodes":19,
			"genres":[{"id":18,"name":"Drama"}],"networks":[{"id":2552,"name":"Apple TV+"}],
			"vote_average":8.4,"popularity":120.5,"original_language":"en","status":"Returning Series"}`))
	})

	d, err := c.GetTVDetail(context.Background(), 95396)
	require.NoError(t, err)
	assert.Equal(t, "Severance", d.Name)
	assert.Equal(t, 2, d.NumberOfSeasons)
	assert.Equal(t, []Genre{{ID: 18, Name: "Drama"}}, d.Genres)
	assert.Equal(t, "Apple TV+", d.Networks[0].Name)
	assert.Equal(t, 8.4, d.VoteAverage)
}

func TestGetRecommendationsAndTrending(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/tv/7/recommendations":
			w.Write([]byte(`{"results":[{"id":10,"name":"A"},{"id":11,"name":"B"}]}`))
		case "/trending/tv/week":
			w.Write([]byte(`{"results":[{"id":12,"name":"C","vote_average":7.5}]}`))
		default:
			http.NotFound(w, r)
		}
	})

	recs, err := c.GetRecommendations(context.Background(), 7)
	require.NoError(t, err)
	assert.Len(t, recs, 2)

	trending, err := c.GetTrending(context.Background())
	require.NoError(t, err)
	require.Len(t, trending, 1)
	assert.Equal(t, 7.5, trending[0].VoteAverage)
}

func TestGetGenres(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/genre/tv/list", r.URL.Path)
		w.Write([]byte(`{"genres":[{"id":18,"name":"Drama"},{"id":35,"name":"Comedy"}]}`))
	})

	genres, err := c.GetGenres(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Genre{{ID: 18, Name: "Drama"}, {ID: 35, Name: "Comedy"}}, genres)
}

func TestDoGet_StatusError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"status_message":"Invalid API key"}`))
	})

	_, err := c.GetTrending(context.Background())
	require.Error(t, err)
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusUnauthorized, statusErr.Code)
	assert.Contains(t, statusErr.Body, "Invalid API key")
}

func TestDoGet_CancelledContext(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not be sent")
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.GetGenres(ctx)
	assert.Error(t, err)
}

func TestClient_SpacesRequests(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"genres":[]}`))
	}))
	defer srv.Close()
	c := NewClient(config.TMDBConfig{BaseURL: srv.URL, RequestInterval: 50 * time.Millisecond})

	start := time.Now()
	for i := 0; i < 3; i++ {
		_, err := c.GetGenres(context.Background())
		require.NoError(t, err)
	}
	assert.GreaterOrEqual(t, time.Since(start), 90*time.Millisecond)
}
