package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore(t *testing.T) {
	store := NewLocalStore()
	require.NoError(t, store.AddDocument("spam", []string{"buy", "now"}))
	require.NoError(t, store.AddDocument("ham", []string{"buy", "milk"}))
	require.NoError(t, store.AddDocument("ham", nil))

	c, err := store.Counts()
	require.NoError(t, err)
	assert.Equal(t, int64(3), c.TotalPosts)
	assert.Equal(t, map[string]int64{"buy": 2, "now": 1, "milk": 1}, c.PostsContaining)
	assert.Equal(t, map[string]int64{"spam": 1, "ham": 2}, c.PostsWithLabel)
	assert.Equal(t, map[string]map[string]int64{
		"spam": {"buy": 1, "now": 1},
		"ham":  {"buy": 1, "milk": 1},
	}, c.PostsWithLabelContaining)
}

func TestLocalStoreCountsIsCopy(t *testing.T) {
	store := NewLocalStore()
	require.NoError(t, store.AddDocument("spam", []string{"buy"}))
	c, err := store.Counts()
	require.NoError(t, err)

	c.PostsContaining["buy"] = 100
	c.PostsWithLabelContaining["spam"]["buy"] = 100

	c2, err := store.Counts()
	require.NoError(t, err)
	assert.Equal(t, int64(1), c2.PostsContaining["buy"])
	assert.Equal(t, int64(1), c2.PostsWithLabelContaining["spam"]["buy"])
}
