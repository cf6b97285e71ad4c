package classifier

import (
	"math"
	"sort"
)

// Model is a trained multinomial naive Bayes classifier. It is immutable and
// safe for concurrent use.
type Model struct {
	tokenizer Tokenizer

	totalPosts               int64
	vocabulary               []string
	labels                   []string
	postsContaining          map[string]int64
	postsWithLabel           map[string]int64
	postsWithLabelContaining map[string]map[string]int64
}

// Prediction is the most probable label for a post and its log-probability score.
type Prediction struct {
	Label string
	Score float64
}

// Class summarizes one label of a trained model.
type Class struct {
	Label    string
	Examples int64
	LogPrior float64
}

// Parameter is the learned statistic for a word seen with a label.
type Parameter struct {
	Label         string
	Word          string
	Count         int64
	LogLikelihood float64
}

// NewModel returns a model over counts. The counts are copied.
func NewModel(counts *Counts, tokenizer Tokenizer) *Model {
	return newModel(counts.clone(), tokenizer)
}

func newModel(c *Counts, tokenizer Tokenizer) *Model {
	if tokenizer == nil {
		tokenizer = WhitespaceTokenizer
	}
	m := &Model{
		tokenizer:                tokenizer,
		totalPosts:               c.TotalPosts,
		postsContaining:          c.PostsContaining,
		postsWithLabel:           c.PostsWithLabel,
		postsWithLabelContaining: c.PostsWithLabelContaining,
	}
	m.vocabulary = sortedKeys(c.PostsContaining)
	m.labels = sortedKeys(c.PostsWithLabel)
	return m
}

func sortedKeys(m map[string]int64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// TotalPosts returns the number of training posts.
func (m *Model) TotalPosts() int64 {
	return m.totalPosts
}

// Vocabulary returns the distinct training words in ascending order.
func (m *Model) Vocabulary() []string {
	return append([]string(nil), m.vocabulary...)
}

// Labels returns the distinct training labels in ascending order.
func (m *Model) Labels() []string {
	return append([]string(nil), m.labels...)
}

// LogPrior returns ln(P(label)).
func (m *Model) LogPrior(label string) (float64, error) {
	if m.totalPosts == 0 {
		return 0, ErrEmptyTrainingSet
	}
	if _, ok := m.postsWithLabel[label]; !ok {
		return 0, ErrLabelDoesNotExist(label)
	}
	return math.Log(float64(m.postsWithLabel[label]) / float64(m.totalPosts)), nil
}

// LogLikelihood returns ln(P(words|label)). words must be distinct.
//
// A word seen with the label contributes its frequency within the label. A
// word seen in training but never with the label falls back to its frequency
// over all posts, and a word never seen at all to 1/TotalPosts.
func (m *Model) LogLikelihood(label string, words []string) (float64, error) {
	if m.totalPosts == 0 {
		return 0, ErrEmptyTrainingSet
	}
	if _, ok := m.postsWithLabel[label]; !ok {
		return 0, ErrLabelDoesNotExist(label)
	}
	total := float64(m.totalPosts)
	wc := m.postsWithLabelContaining[label]
	likelihood := 0.0
	for _, w := range words {
		nwc := wc[w]
		nw := m.postsContaining[w]
		switch {
		case nwc == 0 && nw == 0:
			likelihood += math.Log(1.0 / total)
		case nwc == 0:
			likelihood += math.Log(float64(nw) / total)
		default:
			likelihood += math.Log(float64(nwc) / float64(m.postsWithLabel[label]))
		}
	}
	return likelihood, nil
}

// Predict returns the most probable label for content.
func (m *Model) Predict(content string) (Prediction, error) {
	if len(m.labels) == 0 {
		return Prediction{}, ErrUntrainedModel
	}
	words, err := m.tokenizer.Tokenize(content)
	if err != nil {
		return Prediction{}, err
	}
	var best Prediction
	for i, label := range m.labels {
		score, err := m.score(label, words)
		if err != nil {
			return Prediction{}, err
		}
		// Ties go to the first label in ascending order.
		if i == 0 || score > best.Score {
			best = Prediction{Label: label, Score: score}
		}
	}
	return best, nil
}

// PredictPost returns the most probable label for the post's content. The
// post's tag is ignored.
func (m *Model) PredictPost(p Post) (Prediction, error) {
	return m.Predict(p.Content)
}

func (m *Model) score(label string, words []string) (float64, error) {
	prior, err := m.LogPrior(label)
	if err != nil {
		return 0, err
	}
	likelihood, err := m.LogLikelihood(label, words)
	if err != nil {
		return 0, err
	}
	return prior + likelihood, nil
}

// Classes returns every label with its example count and log-prior, in
// ascending label order.
func (m *Model) Classes() ([]Class, error) {
	if m.totalPosts == 0 {
		return nil, ErrEmptyTrainingSet
	}
	classes := make([]Class, 0, len(m.labels))
	for _, label := range m.labels {
		prior, err := m.LogPrior(label)
		if err != nil {
			return nil, err
		}
		classes = append(classes, Class{
			Label:    label,
			Examples: m.postsWithLabel[label],
			LogPrior: prior,
		})
	}
	return classes, nil
}

// Parameters returns every (label, word) pair seen in training with the
// log-likelihood of a post containing only that word. Pairs are ordered by
// label, then word.
func (m *Model) Parameters() ([]Parameter, error) {
	if m.totalPosts == 0 {
		return nil, ErrEmptyTrainingSet
	}
	var params []Parameter
	for _, label := range m.labels {
		wc := m.postsWithLabelContaining[label]
		for _, w := range m.vocabulary {
			n := wc[w]
			if n == 0 {
				continue
			}
			ll, err := m.LogLikelihood(label, []string{w})
			if err != nil {
				return nil, err
			}
			params = append(params, Parameter{
				Label:         label,
				Word:          w,
				Count:         n,
				LogLikelihood: ll,
			})
		}
	}
	return params, nil
}
