package analysis

import (
	"log/slog"
	"regexp"
	"strings"
	"unicode/utf8"

	"gonum.org/v1/gonum/stat"

	"github.com/rahullath/serializd-ai/internal/models"
)

const (
	minReviewLength    = 10
	positiveThreshold  = 0.1
	negativeThreshold  = -0.1
	keywordsPerBucket  = 10
	negationWindowSize = 3
)

var (
	tokenPattern   = regexp.MustCompile(`[a-z]+(?:'[a-z]+)?`)
	wordPattern    = regexp.MustCompile(`[\p{L}\p{N}_]+`)
	keywordPattern = regexp.MustCompile(`^[a-zA-Z]{3,}$`)
)

// Sentiment is the polarity and subjectivity of one text.
type Sentiment struct {
	Polarity     float64
	Subjectivity float64
}

// Bucket names the class a polarity falls into.
type Bucket int

const (
	Neutral Bucket = iota
	Positive
	Negative
)

// Classify buckets a polarity: above 0.1 is positive, below -0.1 negative.
func Classify(polarity float64) Bucket {
	switch {
	case polarity > positiveThreshold:
		return Positive
	case polarity < negativeThreshold:
		return Negative
	default:
		return Neutral
	}
}

// ScoreText averages the lexicon entries found in text. Intensifiers scale
// the next opinion word; a negation within the preceding few tokens flips
// and damps it. Text without opinion words scores zero on both axes.
func ScoreText(text string) Sentiment {
	tokens := tokenPattern.FindAllString(strings.ToLower(text), -1)

	var polarities, subjectivities []float64
	intensity := 1.0
	negatedFor := 0
	for _, tok := range tokens {
		if _, ok := negations[tok]; ok || strings.HasSuffix(tok, "n't") {
			negatedFor = negationWindowSize
			continue
		}
		if f, ok := intensifiers[tok]; ok {
			intensity *= f
			continue
		}
		w, ok := opinionLexicon[tok]
		if !ok {
			if negatedFor > 0 {
				negatedFor--
			}
			intensity = 1.0
			continue
		}

		p := clamp(w.polarity*intensity, -1, 1)
		if negatedFor > 0 {
			p *= negationFactor
		}
		polarities = append(polarities, p)
		subjectivities = append(subjectivities, clamp(w.subjectivity*intensity, 0, 1))
		intensity = 1.0
		negatedFor = 0
	}

	if len(polarities) == 0 {
		return Sentiment{}
	}
	return Sentiment{
		Polarity:     clamp(stat.Mean(polarities, nil), -1, 1),
		Subjectivity: clamp(stat.Mean(subjectivities, nil), 0, 1),
	}
}

// AnalyzeSentiment scores every review text longer than ten characters and
// aggregates the results. It returns nil when no text qualifies.
func AnalyzeSentiment(reviews []models.Review) *models.SentimentAnalysis {
	var (
		polarities, subjectivities   []float64
		positiveTexts, negativeTexts []string
		result                       models.SentimentAnalysis
	)
	for _, r := range reviews {
		text := r.ReviewText
		if text == models.NotAvailable || utf8.RuneCountInString(text) <= minReviewLength {
			continue
		}
		s := ScoreText(text)
		polarities = append(polarities, s.Polarity)
		subjectivities = append(subjectivities, s.Subjectivity)

		switch Classify(s.Polarity) {
		case Positive:
			result.PositiveReviews++
			positiveTexts = append(positiveTexts, text)
		case Negative:
			result.NegativeReviews++
			negativeTexts = append(negativeTexts, text)
		default:
			result.NeutralReviews++
		}
	}
	if len(polarities) == 0 {
		slog.Warn("no valid review text for sentiment analysis")
		return nil
	}

	result.AverageSentiment, result.SentimentStd = stat.PopMeanStdDev(polarities, nil)
	result.AverageSubjectivity = stat.Mean(subjectivities, nil)
	result.TotalAnalyzedReviews = len(polarities)

	if len(positiveTexts) > 0 && len(negativeTexts) > 0 {
		result.PositiveKeywords = commonWords(positiveTexts, keywordsPerBucket)
		result.NegativeKeywords = commonWords(negativeTexts, keywordsPerBucket)
	}

	slog.Info("analyzed review sentiment", "reviews", result.TotalAnalyzedReviews)
	return &result
}

// commonWords returns the n most frequent words of at least three ASCII
// letters across texts. Words are whole runs of Unicode word characters, so
// "café" does not yield "caf".
func commonWords(texts []string, n int) models.CountList {
	c := newCounter()
	for _, t := range texts {
		for _, w := range wordPattern.FindAllString(strings.ToLower(t), -1) {
			if keywordPattern.MatchString(w) {
				c.add(w)
			}
		}
	}
	return toCountList(c.mostCommon(n))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
