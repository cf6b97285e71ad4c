package classifier

import (
	log "github.com/sirupsen/logrus"
)

// Trainer aggregates training posts into a Store. A Trainer is single-use:
// once Model has been called no more posts are accepted.
type Trainer struct {
	store     Store
	tokenizer Tokenizer
	frozen    bool
}

// NewTrainer returns a Trainer that records counts in store.
func NewTrainer(store Store, tokenizer Tokenizer) (*Trainer, error) {
	return &Trainer{
		store:     store,
		tokenizer: tokenizer,
	}, nil
}

// Add trains the classifier on a single post.
func (t *Trainer) Add(p Post) error {
	if t.frozen {
		return ErrTrainerFrozen
	}
	tokens, err := t.tokenizer.Tokenize(p.Content)
	if err != nil {
		return err
	}
	return t.store.AddDocument(p.Tag, tokens)
}

// Consume adds every post from src in order and returns the number added.
// fn, if not nil, is called after each post has been added.
func (t *Trainer) Consume(src PostSource, fn func(Post) error) (int64, error) {
	var n int64
	err := eachPost(src, func(p Post) error {
		if err := t.Add(p); err != nil {
			return err
		}
		n++
		if fn != nil {
			return fn(p)
		}
		return nil
	})
	return n, err
}

// Model freezes the trainer and returns the trained model.
func (t *Trainer) Model() (*Model, error) {
	c, err := t.store.Counts()
	if err != nil {
		return nil, err
	}
	t.frozen = true
	m := newModel(c, t.tokenizer)
	log.WithFields(log.Fields{
		"posts":  m.totalPosts,
		"labels": len(m.labels),
		"vocab":  len(m.vocabulary),
	}).Debugln("trained model")
	return m, nil
}

// Train builds a model from every post in src using an in-memory store and
// the whitespace tokenizer.
func Train(src PostSource) (*Model, error) {
	t, err := NewTrainer(NewLocalStore(), WhitespaceTokenizer)
	if err != nil {
		return nil, err
	}
	if _, err := t.Consume(src, nil); err != nil {
		return nil, err
	}
	return t.Model()
}
