// Package report prints training summaries and test results.
package report

import (
	"fmt"
	"io"
	"strconv"

	classifier "github.com/samuel/go-postclassifier"
)

// DefaultPrecision is the number of significant digits printed for
// probabilities.
const DefaultPrecision = 3

// Printer writes a human readable report to w. The first write error is
// kept and returned by Err; later writes are skipped.
type Printer struct {
	w         io.Writer
	precision int
	err       error
}

// NewPrinter returns a Printer writing to w with precision significant
// digits. A non-positive precision uses DefaultPrecision.
func NewPrinter(w io.Writer, precision int) *Printer {
	if precision <= 0 {
		precision = DefaultPrecision
	}
	return &Printer{w: w, precision: precision}
}

// Err returns the first write error.
func (p *Printer) Err() error {
	return p.err
}

func (p *Printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *Printer) float(f float64) string {
	return strconv.FormatFloat(f, 'g', p.precision, 64)
}

// TrainingHeader starts the list of training posts.
func (p *Printer) TrainingHeader() {
	p.printf("training data:\n")
}

// TrainingPost prints one training post.
func (p *Printer) TrainingPost(post classifier.Post) {
	p.printf("  label = %s, content = %s\n", post.Tag, post.Content)
}

// Trained prints the number of posts trained on.
func (p *Printer) Trained(n int64) {
	p.printf("trained on %d examples\n", n)
}

// Summary prints the vocabulary size, classes and parameters of m.
func (p *Printer) Summary(m *classifier.Model) error {
	p.printf("vocabulary size = %d\n\n", len(m.Vocabulary()))

	classes, err := m.Classes()
	if err != nil {
		return err
	}
	params, err := m.Parameters()
	if err != nil {
		return err
	}
	p.printf("classes:\n")
	for _, c := range classes {
		p.printf("  %s, %d examples, log-prior = %s\n", c.Label, c.Examples, p.float(c.LogPrior))
	}
	p.printf("classifier parameters:\n")
	for _, param := range params {
		p.printf("  %s:%s, count = %d, log-likelihood = %s\n",
			param.Label, param.Word, param.Count, p.float(param.LogLikelihood))
	}
	p.printf("\n")
	return p.err
}

// TestHeader starts the list of test results.
func (p *Printer) TestHeader() {
	p.printf("\ntest data:\n")
}

// Result prints one prediction and the post it was made for.
func (p *Printer) Result(r classifier.Result) {
	p.printf("  correct = %s, predicted = %s, log-probability score = %s\n",
		r.TrueTag, r.PredictedTag, p.float(r.Score))
	p.printf("  content = %s\n\n", r.Content)
}

// Performance prints how many test posts were predicted correctly.
func (p *Printer) Performance(rep classifier.Report) {
	p.printf("performance: %d / %d posts predicted correctly\n", rep.Correct, rep.Total)
}
