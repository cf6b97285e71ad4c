package report

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	classifier "github.com/samuel/go-postclassifier"
)

func TestSummary(t *testing.T) {
	m, err := classifier.Train(classifier.NewSliceSource(
		classifier.Post{Tag: "spam", Content: "buy now"},
		classifier.Post{Tag: "spam", Content: "buy"},
		classifier.Post{Tag: "ham", Content: "hello now"},
	))
	require.NoError(t, err)

	var buf bytes.Buffer
	p := NewPrinter(&buf, 0)
	p.Trained(m.TotalPosts())
	require.NoError(t, p.Summary(m))

	want := "trained on 3 examples\n" +
		"vocabulary size = 3\n" +
		"\n" +
		"classes:\n" +
		"  ham, 1 examples, log-prior = -1.1\n" +
		"  spam, 2 examples, log-prior = -0.405\n" +
		"classifier parameters:\n" +
		"  ham:hello, count = 1, log-likelihood = 0\n" +
		"  ham:now, count = 1, log-likelihood = 0\n" +
		"  spam:buy, count = 2, log-likelihood = 0\n" +
		"  spam:now, count = 1, log-likelihood = -0.693\n" +
		"\n"
	assert.Equal(t, want, buf.String())
}

func TestSummaryEmpty(t *testing.T) {
	m, err := classifier.Train(classifier.NewSliceSource())
	require.NoError(t, err)
	var buf bytes.Buffer
	assert.Equal(t, classifier.ErrEmptyTrainingSet, NewPrinter(&buf, 3).Summary(m))
}

func TestResults(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, 3)
	p.TestHeader()
	p.Result(classifier.Result{TrueTag: "ham", PredictedTag: "spam", Score: -13.2345, Content: "buy now"})
	p.Performance(classifier.Report{Correct: 0, Total: 1})
	require.NoError(t, p.Err())

	want := "\ntest data:\n" +
		"  correct = ham, predicted = spam, log-probability score = -13.2\n" +
		"  content = buy now\n" +
		"\n" +
		"performance: 0 / 1 posts predicted correctly\n"
	assert.Equal(t, want, buf.String())
}

type errWriter struct{}

func (errWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestPrinterKeepsFirstError(t *testing.T) {
	p := NewPrinter(errWriter{}, 3)
	p.TrainingHeader()
	p.Trained(1)
	assert.EqualError(t, p.Err(), "closed")
}
