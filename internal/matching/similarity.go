package matching

import (
	"errors"
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/resume-rater/internal/types"
)

// tokenPattern keeps alphanumeric tokens of two or more characters.
var tokenPattern = regexp.MustCompile(`\b\w\w+\b`)

var errEmptyVocabulary = errors.New("empty vocabulary; documents contain only stop words")

// ContentSimilarity compares the candidate document against the job's stated
// responsibilities using term-frequency/inverse-document-frequency vectors.
// Each blank-line-delimited document section is scored by cosine similarity
// against the responsibilities text; the result combines best and average
// section similarity and reports the top three sections with previews.
// Vectorization failure yields a zero-score result carrying the error detail
// rather than an error return.
func ContentSimilarity(resumeText string, responsibilities []string) types.ContentSimilarityAnalysis {
	jobText := strings.Join(responsibilities, " ")
	if resumeText == "" || jobText == "" {
		return types.ContentSimilarityAnalysis{TopMatchingSections: []types.SectionMatch{}}
	}

	sections := sectionPattern.Split(resumeText, -1)

	similarities, err := sectionSimilarities(jobText, sections)
	if err != nil {
		return types.ContentSimilarityAnalysis{
			TopMatchingSections: []types.SectionMatch{},
			Error:               err.Error(),
		}
	}

	top := topSections(sections, similarities, 3)

	maxSim := 0.0
	sum := 0.0
	for _, sim := range similarities {
		if sim > maxSim {
			maxSim = sim
		}
		sum += sim
	}
	mean := 0.0
	if len(similarities) > 0 {
		mean = sum / float64(len(similarities))
	}

	return types.ContentSimilarityAnalysis{
		Score:               round2(maxSimilarityWeight*maxSim + meanSimilarityWeight*mean),
		Similarity:          round1(maxSim * 100),
		TopMatchingSections: top,
	}
}

// sectionSimilarities builds TF-IDF vectors over the job text plus all
// sections and returns each section's cosine similarity to the job text.
func sectionSimilarities(jobText string, sections []string) ([]float64, error) {
	documents := append([]string{jobText}, sections...)

	// Vocabulary over all documents.
	vocabulary := map[string]int{}
	tokenized := make([][]string, len(documents))
	for i, doc := range documents {
		tokens := tokenize(doc)
		tokenized[i] = tokens
		for _, token := range tokens {
			if _, ok := vocabulary[token]; !ok {
				vocabulary[token] = len(vocabulary)
			}
		}
	}
	if len(vocabulary) == 0 {
		return nil, errEmptyVocabulary
	}

	// Document frequencies, then smoothed idf.
	documentFrequency := make([]int, len(vocabulary))
	for _, tokens := range tokenized {
		seen := map[string]bool{}
		for _, token := range tokens {
			if !seen[token] {
				seen[token] = true
				documentFrequency[vocabulary[token]]++
			}
		}
	}
	n := float64(len(documents))
	idf := make([]float64, len(vocabulary))
	for i, df := range documentFrequency {
		idf[i] = math.Log((1+n)/(1+float64(df))) + 1
	}

	vectors := make([][]float64, len(documents))
	for i, tokens := range tokenized {
		vectors[i] = tfidfVector(tokens, vocabulary, idf)
	}

	similarities := make([]float64, len(sections))
	for i := range sections {
		similarities[i] = dot(vectors[0], vectors[i+1])
	}
	return similarities, nil
}

func tokenize(text string) []string {
	raw := tokenPattern.FindAllString(strings.ToLower(text), -1)
	tokens := raw[:0]
	for _, token := range raw {
		if !englishStopwords[token] {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

// tfidfVector builds an L2-normalized term vector, so cosine similarity
// reduces to a dot product.
func tfidfVector(tokens []string, vocabulary map[string]int, idf []float64) []float64 {
	vector := make([]float64, len(idf))
	for _, token := range tokens {
		vector[vocabulary[token]]++
	}
	norm := 0.0
	for i := range vector {
		vector[i] *= idf[i]
		norm += vector[i] * vector[i]
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vector {
			vector[i] /= norm
		}
	}
	return vector
}

func dot(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// topSections returns the k most similar sections with positive similarity,
// highest first, with previews truncated to 100 characters.
func topSections(sections []string, similarities []float64, k int) []types.SectionMatch {
	order := make([]int, len(similarities))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return similarities[order[a]] > similarities[order[b]]
	})

	top := []types.SectionMatch{}
	for _, i := range order {
		if len(top) >= k || similarities[i] <= 0 {
			break
		}
		top = append(top, types.SectionMatch{
			Preview:    preview(sections[i], 100),
			Similarity: round1(similarities[i] * 100),
		})
	}
	return top
}

func preview(s string, n int) string {
	if len(s) > n {
		return s[:n] + "..."
	}
	return s
}
