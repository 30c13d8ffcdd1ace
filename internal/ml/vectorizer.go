package ml

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// smoothIDF is the smoothed inverse document frequency: both numerator and
// denominator get a +1 virtual document so unseen terms never divide by zero.
func smoothIDF(n, df float64) float64 {
	return math.Log((1+n)/(1+df)) + 1
}

// Feature is a single non-zero entry of a sparse document vector.
type Feature struct {
	Index int
	Value float64
}

// Vector is a sparse TF-IDF document representation, ordered by index.
type Vector []Feature

// Vectorizer turns normalized text into L2-normalized TF-IDF vectors over a
// bounded unigram+bigram vocabulary. All fields are exported so a fitted
// vectorizer can travel inside a gob-encoded artifact.
type Vectorizer struct {
	MaxFeatures int
	MinDocFreq  int
	MaxDocRatio float64

	Vocab map[string]int
	IDF   []float64
}

// NewVectorizer returns an unfitted vectorizer with the training defaults:
// vocabulary capped at 3000 terms, terms must appear in at least 2 documents
// and at most 80% of them.
func NewVectorizer() *Vectorizer {
	return &Vectorizer{
		MaxFeatures: 3000,
		MinDocFreq:  2,
		MaxDocRatio: 0.8,
	}
}

// terms tokenizes a normalized document into stop-word-filtered unigrams and
// adjacent bigrams. Bigrams are formed after stop-word removal, so a bigram
// never contains a function word.
func (v *Vectorizer) terms(doc string) []string {
	var tokens []string
	for _, tok := range strings.Fields(doc) {
		if !IsStopWord(tok) {
			tokens = append(tokens, tok)
		}
	}

	terms := make([]string, 0, len(tokens)*2)
	terms = append(terms, tokens...)
	for i := 0; i+1 < len(tokens); i++ {
		terms = append(terms, tokens[i]+" "+tokens[i+1])
	}
	return terms
}

// Fit builds the vocabulary and IDF weights from a training corpus.
func (v *Vectorizer) Fit(docs []string) error {
	if len(docs) == 0 {
		return fmt.Errorf("vectorizer: empty corpus")
	}

	docFreq := map[string]int{}
	for _, doc := range docs {
		seen := map[string]struct{}{}
		for _, term := range v.terms(doc) {
			if _, ok := seen[term]; ok {
				continue
			}
			seen[term] = struct{}{}
			docFreq[term]++
		}
	}

	maxDF := int(v.MaxDocRatio * float64(len(docs)))
	type candidate struct {
		term string
		df   int
	}
	var candidates []candidate
	for term, df := range docFreq {
		if df < v.MinDocFreq || df > maxDF {
			continue
		}
		candidates = append(candidates, candidate{term, df})
	}

	// Highest document frequency wins the vocabulary cap; ties break on the
	// term itself so fitting is deterministic.
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].df != candidates[j].df {
			return candidates[i].df > candidates[j].df
		}
		return candidates[i].term < candidates[j].term
	})
	if v.MaxFeatures > 0 && len(candidates) > v.MaxFeatures {
		candidates = candidates[:v.MaxFeatures]
	}

	// Vocabulary indices are assigned in term order, independent of the
	// frequency ranking above.
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].term < candidates[j].term
	})

	v.Vocab = make(map[string]int, len(candidates))
	v.IDF = make([]float64, len(candidates))
	n := float64(len(docs))
	for i, c := range candidates {
		v.Vocab[c.term] = i
		v.IDF[i] = smoothIDF(n, float64(c.df))
	}

	return nil
}

// Transform converts one normalized document into an L2-normalized TF-IDF
// vector. Unknown terms are ignored.
func (v *Vectorizer) Transform(doc string) Vector {
	counts := map[int]float64{}
	for _, term := range v.terms(doc) {
		if idx, ok := v.Vocab[term]; ok {
			counts[idx]++
		}
	}
	if len(counts) == 0 {
		return nil
	}

	vec := make(Vector, 0, len(counts))
	values := make([]float64, 0, len(counts))
	for idx, tf := range counts {
		vec = append(vec, Feature{Index: idx, Value: tf * v.IDF[idx]})
	}
	sort.Slice(vec, func(i, j int) bool { return vec[i].Index < vec[j].Index })

	for _, f := range vec {
		values = append(values, f.Value)
	}
	norm := floats.Norm(values, 2)
	if norm > 0 {
		for i := range vec {
			vec[i].Value /= norm
		}
	}
	return vec
}

// TransformAll vectorizes a corpus.
func (v *Vectorizer) TransformAll(docs []string) []Vector {
	vectors := make([]Vector, len(docs))
	for i, doc := range docs {
		vectors[i] = v.Transform(doc)
	}
	return vectors
}

// NumFeatures returns the fitted vocabulary size.
func (v *Vectorizer) NumFeatures() int {
	return len(v.IDF)
}
