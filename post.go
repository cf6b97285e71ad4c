package classifier

import "io"

// Record field names.
const (
	TagField     = "tag"
	ContentField = "content"
)

// Post is one labeled example.
type Post struct {
	Tag     string
	Content string
}

// PostFromRecord builds a Post from a field name -> value mapping.
func PostFromRecord(rec map[string]string) (Post, error) {
	tag, ok := rec[TagField]
	if !ok {
		return Post{}, ErrMissingField(TagField)
	}
	content, ok := rec[ContentField]
	if !ok {
		return Post{}, ErrMissingField(ContentField)
	}
	return Post{Tag: tag, Content: content}, nil
}

// Record returns the post as a field name -> value mapping.
func (p Post) Record() map[string]string {
	return map[string]string{
		TagField:     p.Tag,
		ContentField: p.Content,
	}
}

// PostSource supplies records one at a time. Next returns io.EOF once the
// source is exhausted.
type PostSource interface {
	Next() (map[string]string, error)
}

// SliceSource is a PostSource over posts held in memory.
type SliceSource struct {
	posts []Post
	pos   int
}

// NewSliceSource returns a PostSource that yields posts in order.
func NewSliceSource(posts ...Post) *SliceSource {
	return &SliceSource{posts: posts}
}

func (s *SliceSource) Next() (map[string]string, error) {
	if s.pos >= len(s.posts) {
		return nil, io.EOF
	}
	p := s.posts[s.pos]
	s.pos++
	return p.Record(), nil
}

// eachPost calls fn for every post from src until it is exhausted.
func eachPost(src PostSource, fn func(Post) error) error {
	for {
		rec, err := src.Next()
		if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}
		p, err := PostFromRecord(rec)
		if err != nil {
			return err
		}
		if err := fn(p); err != nil {
			return err
		}
	}
}
