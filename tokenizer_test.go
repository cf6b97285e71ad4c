package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniqueWords(t *testing.T) {
	cases := []struct {
		text string
		want []string
	}{
		{"", nil},
		{" \t\n ", nil},
		{"a a b", []string{"a", "b"}},
		{"  b\t\ta \n a  ", []string{"a", "b"}},
		{"Buy buy BUY!", []string{"BUY!", "Buy", "buy"}},
		{"x", []string{"x"}},
		{"caf\u00a0noir", []string{"caf\u00a0noir"}},
		{"a\u2003b\u0085c d", []string{"a\u2003b\u0085c", "d"}},
		{"a\vb\fc\rd", []string{"a", "b", "c", "d"}},
	}
	for _, c := range cases {
		got := UniqueWords(c.text)
		if len(c.want) == 0 {
			assert.Empty(t, got, "UniqueWords(%q)", c.text)
			continue
		}
		assert.Equal(t, c.want, got, "UniqueWords(%q)", c.text)
	}
}

func TestWhitespaceTokenizer(t *testing.T) {
	tokens, err := WhitespaceTokenizer.Tokenize("to be or not to be")
	require.NoError(t, err)
	assert.Equal(t, []string{"be", "not", "or", "to"}, tokens)
}
