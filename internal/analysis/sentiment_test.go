package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahullath/serializd-ai/internal/models"
)

func TestScoreText(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Bucket
	}{
		{"positive", "I loved this show, it was wonderful", Positive},
		{"negative", "boring and terrible writing throughout", Negative},
		{"negated positive", "honestly it was not good at all", Negative},
		{"contraction negation", "this season wasn't great", Negative},
		{"no opinion words", "The episode aired on Tuesday", Neutral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreText(tt.text)
			assert.Equal(t, tt.want, Classify(got.Polarity))
			assert.GreaterOrEqual(t, got.Polarity, -1.0)
			assert.LessOrEqual(t, got.Polarity, 1.0)
			assert.GreaterOrEqual(t, got.Subjectivity, 0.0)
			assert.LessOrEqual(t, got.Subjectivity, 1.0)
		})
	}
}

func TestScoreText_Intensifier(t *testing.T) {
	plain := ScoreText("it was good")
	boosted := ScoreText("it was very good")

	assert.InDelta(t, 0.7, plain.Polarity, 1e-9)
	assert.Greater(t, boosted.Polarity, plain.Polarity)
}

func TestClassify(t *testing.T) {
	assert.Equal(t, Positive, Classify(0.11))
	assert.Equal(t, Neutral, Classify(0.1))
	assert.Equal(t, Neutral, Classify(-0.1))
	assert.Equal(t, Negative, Classify(-0.11))
}

func TestAnalyzeSentiment(t *testing.T) {
	reviews := []models.Review{
		{Title: "A", ReviewText: "I loved this show, it was wonderful"},
		{Title: "B", ReviewText: "boring and terrible writing throughout"},
		{Title: "C", ReviewText: "The episode aired on Tuesday"},
		{Title: "D", ReviewText: "too short"},
		{Title: "E", ReviewText: models.NotAvailable},
	}

	got := AnalyzeSentiment(reviews)
	require.NotNil(t, got)

	assert.Equal(t, 3, got.TotalAnalyzedReviews)
	assert.Equal(t, 1, got.PositiveReviews)
	assert.Equal(t, 1, got.NegativeReviews)
	assert.Equal(t, 1, got.NeutralReviews)
	assert.NotEmpty(t, got.PositiveKeywords)
	assert.NotEmpty(t, got.NegativeKeywords)
	assert.Equal(t, "loved", got.PositiveKeywords[0].Name)
}

func TestAnalyzeSentiment_KeywordsNeedBothBuckets(t *testing.T) {
	got := AnalyzeSentiment([]models.Review{
		{Title: "A", ReviewText: "I loved this show, it was wonderful"},
	})
	require.NotNil(t, got)

	assert.Empty(t, got.PositiveKeywords)
	assert.Empty(t, got.NegativeKeywords)
	assert.Zero(t, got.SentimentStd)
}

func TestAnalyzeSentiment_NothingQualifies(t *testing.T) {
	assert.Nil(t, AnalyzeSentiment([]models.Review{{Title: "A", ReviewText: "short"}}))
}

func TestAnalyzeSentiment_LengthCountsCharacters(t *testing.T) {
	// 6 characters, 18 bytes.
	assert.Nil(t, AnalyzeSentiment([]models.Review{{Title: "A", ReviewText: "最高の番組だ"}}))

	got := AnalyzeSentiment([]models.Review{{Title: "A", ReviewText: "très très bon"}})
	require.NotNil(t, got)
	assert.Equal(t, 1, got.TotalAnalyzedReviews)
}

func TestCommonWords(t *testing.T) {
	tests := []struct {
		name  string
		texts []string
		want  models.CountList
	}{
		{"accented words are not split", []string{"café café naïve"}, models.CountList{}},
		{"digits join the word", []string{"abc123 s01e02"}, models.CountList{}},
		{"lower-cased and counted", []string{"Great SHOW great", "show"}, models.CountList{
			{Name: "great", Count: 2},
			{Name: "show", Count: 2},
		}},
		{"short words dropped", []string{"it is ok, fun"}, models.CountList{{Name: "fun", Count: 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, commonWords(tt.texts, 10))
		})
	}
}
