package application

import (
	"regexp"
	"strings"
)

// AnalysisResult is the outcome of the sentiment heuristic.
type AnalysisResult struct {
	Sentiment  string   `json:"sentiment"`
	Confidence float64  `json:"confidence"`
	Keywords   []string `json:"keywords"`
	WordCount  int      `json:"word_count"`
}

// Bilingual lexicons (English/Spanish). Classification is plain word-list
// membership, not a trained model.
var positiveWords = wordSet(
	"good", "great", "excellent", "amazing", "love", "like", "best", "perfect",
	"happy", "wonderful", "cool", "nice", "awesome", "bueno", "bien", "excelente",
	"genial", "amor", "gusta", "mejor", "perfecto", "feliz",
)

var negativeWords = wordSet(
	"bad", "terrible", "awful", "worst", "hate", "dislike", "poor", "sad", "angry",
	"boring", "useless", "malo", "peor", "odio", "triste", "enojado",
	"aburrido", "inutil", "feo",
)

func wordSet(words ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// AnalysisService classifies free text as positive/negative/neutral by
// counting lexicon hits.
type AnalysisService struct{}

func NewAnalysisService() *AnalysisService { return &AnalysisService{} }

// Classify tokenizes on word boundaries, lowercased. Text that tokenizes to
// nothing is neutral with confidence 0. Equal positive/negative counts
// (including both zero) are neutral with confidence 0.5; otherwise confidence
// is 0.5 + majority_count/(total_tokens+1), capped at 0.99. Keywords are up
// to 5 distinct tokens longer than 5 characters in first-occurrence order.
func (s *AnalysisService) Classify(text string) AnalysisResult {
	tokens := wordPattern.FindAllString(strings.ToLower(text), -1)
	if len(tokens) == 0 {
		return AnalysisResult{Sentiment: "neutral", Confidence: 0.0, Keywords: []string{}, WordCount: 0}
	}

	posCount, negCount := 0, 0
	for _, tok := range tokens {
		if _, ok := positiveWords[tok]; ok {
			posCount++
		}
		if _, ok := negativeWords[tok]; ok {
			negCount++
		}
	}

	sentiment := "neutral"
	confidence := 0.5
	switch {
	case posCount > negCount:
		sentiment = "positive"
		confidence = capConfidence(0.5 + float64(posCount)/float64(len(tokens)+1))
	case negCount > posCount:
		sentiment = "negative"
		confidence = capConfidence(0.5 + float64(negCount)/float64(len(tokens)+1))
	}

	return AnalysisResult{
		Sentiment:  sentiment,
		Confidence: confidence,
		Keywords:   extractKeywords(tokens),
		WordCount:  len(tokens),
	}
}

func capConfidence(c float64) float64 {
	if c > 0.99 {
		return 0.99
	}
	return c
}

// extractKeywords keeps first-occurrence order so the output is deterministic.
func extractKeywords(tokens []string) []string {
	seen := make(map[string]struct{})
	keywords := make([]string, 0, 5)
	for _, tok := range tokens {
		if len([]rune(tok)) <= 5 {
			continue
		}
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}
		keywords = append(keywords, tok)
		if len(keywords) == 5 {
			break
		}
	}
	return keywords
}
