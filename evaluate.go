package classifier

import (
	log "github.com/sirupsen/logrus"
)

// Result is the outcome of classifying one test post.
type Result struct {
	TrueTag      string
	PredictedTag string
	Score        float64
	Content      string
}

// Correct reports whether the prediction matched the true tag.
func (r Result) Correct() bool {
	return r.TrueTag == r.PredictedTag
}

// Report tallies correct predictions over a test run.
type Report struct {
	Correct int64
	Total   int64
}

// Accuracy returns Correct/Total, or 0 if nothing was tested.
func (r Report) Accuracy() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.Total)
}

// Evaluate predicts every post from src with m and compares the prediction to
// the post's tag. fn, if not nil, receives each result as it is produced along
// with the running tally including that result. The report covers the posts
// processed before any error.
func Evaluate(m *Model, src PostSource, fn func(Result, Report) error) (Report, error) {
	var rep Report
	err := eachPost(src, func(p Post) error {
		pred, err := m.PredictPost(p)
		if err != nil {
			return err
		}
		res := Result{
			TrueTag:      p.Tag,
			PredictedTag: pred.Label,
			Score:        pred.Score,
			Content:      p.Content,
		}
		rep.Total++
		if res.Correct() {
			rep.Correct++
		}
		if fn != nil {
			return fn(res, rep)
		}
		return nil
	})
	log.WithFields(log.Fields{
		"correct": rep.Correct,
		"total":   rep.Total,
	}).Debugln("evaluated model")
	return rep, err
}
