package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahullath/serializd-ai/internal/dataset"
	"github.com/rahullath/serializd-ai/internal/tmdb"
)

type searchCall struct {
	title string
	year  int
}

type fakeEnrichCatalog struct {
	matches  map[string]*tmdb.TVShow
	details  map[int]*tmdb.TVDetail
	searches []searchCall
}

func (f *fakeEnrichCatalog) SearchTV(_ context.Context, title string, year int) (*tmdb.TVShow, error) {
	f.searches = append(f.searches, searchCall{title, year})
	return f.matches[title], nil
}

func (f *fakeEnrichCatalog) GetTVDetail(_ context.Context, id int) (*tmdb.TVDetail, error) {
	d, ok := f.details[id]
	if !ok {
		return nil, assert.AnError
	}
	return d, nil
}

func TestSplitTitleYear(t *testing.T) {
	tests := []struct {
		in        string
		wantTitle string
		wantYear  int
	}{
		{"Shogun (2024)", "Shogun", 2024},
		{"The Office (US)", "The Office (US)", 0},
		{"Severance", "Severance", 0},
		{" Doctor Who (2005) ", "Doctor Who", 2005},
		{"(2020)", "(2020)", 0},
	}
	for _, tt := range tests {
		title, year := SplitTitleYear(tt.in)
		assert.Equal(t, tt.wantTitle, title, tt.in)
		assert.Equal(t, tt.wantYear, year, tt.in)
	}
}

func TestEnrich(t *testing.T) {
	files := testFiles(t)
	writeCSV(t, files.WatchedShows, "Title\nShogun (2024)\nNo Match\nBroken Detail\n")
	catalog := &fakeEnrichCatalog{
		matches: map[string]*tmdb.TVShow{
			"Shogun":        {ID: 126308},
			"Broken Detail": {ID: 9},
		},
		details: map[int]*tmdb.TVDetail{
			126308: {
				ID:               126308,
				Name:             "Shōgun",
				NumberOfSeasons:  1,
				NumberOfEpisodes: 10,
				Genres:           []tmdb.Genre{{ID: 18, Name: "Drama"}, {ID: 10768, Name: "War & Politics"}},
				Networks:         []tmdb.Network{{ID: 49, Name: "FX"}},
				VoteAverage:      8.6,
				Popularity:       210.4,
				OriginalLanguage: "en",
				Status:           "Returning Series",
			},
		},
	}

	result, err := NewEnrichService(catalog, files, "key").Enrich(context.Background())
	require.NoError(t, err)

	assert.Equal(t, &EnrichResult{Total: 3, Matched: 1, Failed: []string{"No Match", "Broken Detail"}}, result)
	assert.Equal(t, searchCall{"Shogun", 2024}, catalog.searches[0])

	shows, err := dataset.ReadWatchedShows(files.EnrichedShows)
	require.NoError(t, err)
	require.Len(t, shows, 3)

	assert.Equal(t, "Shogun (2024)", shows[0].Title)
	assert.Equal(t, []string{"Drama", "War & Politics"}, shows[0].Genres)
	assert.Equal(t, []string{"FX"}, shows[0].Networks)
	require.NotNil(t, shows[0].TMDBID)
	assert.Equal(t, 126308, *shows[0].TMDBID)
	assert.Equal(t, 8.6, *shows[0].VoteAverage)

	assert.Equal(t, "No Match", shows[1].Title)
	assert.Nil(t, shows[1].TMDBID)
	assert.Empty(t, shows[1].Genres)
}

func TestEnrich_RequiresAPIKey(t *testing.T) {
	_, err := NewEnrichService(&fakeEnrichCatalog{}, testFiles(t), "").Enrich(context.Background())
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestEnrich_MissingInput(t *testing.T) {
	_, err := NewEnrichService(&fakeEnrichCatalog{}, testFiles(t), "key").Enrich(context.Background())
	assert.ErrorIs(t, err, ErrWatchedShowsUnavailable)
}
