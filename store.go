package classifier

// Counts holds the count tables aggregated from a training set.
type Counts struct {
	TotalPosts               int64
	PostsContaining          map[string]int64            // word -> count
	PostsWithLabel           map[string]int64            // label -> count
	PostsWithLabelContaining map[string]map[string]int64 // label -> word -> count
}

func newCounts() *Counts {
	return &Counts{
		PostsContaining:          make(map[string]int64),
		PostsWithLabel:           make(map[string]int64),
		PostsWithLabelContaining: make(map[string]map[string]int64),
	}
}

func (c *Counts) add(label string, tokens []string) {
	c.TotalPosts++
	wc := c.PostsWithLabelContaining[label]
	if wc == nil {
		wc = make(map[string]int64, len(tokens))
		c.PostsWithLabelContaining[label] = wc
	}
	for _, t := range tokens {
		c.PostsContaining[t]++
		wc[t]++
	}
	c.PostsWithLabel[label]++
}

func (c *Counts) clone() *Counts {
	n := &Counts{
		TotalPosts:               c.TotalPosts,
		PostsContaining:          make(map[string]int64, len(c.PostsContaining)),
		PostsWithLabel:           make(map[string]int64, len(c.PostsWithLabel)),
		PostsWithLabelContaining: make(map[string]map[string]int64, len(c.PostsWithLabelContaining)),
	}
	for w, k := range c.PostsContaining {
		n.PostsContaining[w] = k
	}
	for l, k := range c.PostsWithLabel {
		n.PostsWithLabel[l] = k
	}
	for l, wc := range c.PostsWithLabelContaining {
		m := make(map[string]int64, len(wc))
		for w, k := range wc {
			m[w] = k
		}
		n.PostsWithLabelContaining[l] = m
	}
	return n
}

// Store is the storage interface for training counts
type Store interface {
	// AddDocument records one post with the given label. Tokens must be distinct.
	AddDocument(label string, tokens []string) error
	// Counts returns a copy of the aggregated count tables.
	Counts() (*Counts, error)
}

type localStore struct {
	counts *Counts
}

// NewLocalStore returns a new in-memory store
func NewLocalStore() Store {
	return &localStore{counts: newCounts()}
}

func (ls *localStore) AddDocument(label string, tokens []string) error {
	ls.counts.add(label, tokens)
	return nil
}

func (ls *localStore) Counts() (*Counts, error) {
	return ls.counts.clone(), nil
}
