//go:build sqlite3
// +build sqlite3

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	classifier "github.com/samuel/go-postclassifier"
	"github.com/samuel/go-postclassifier/internal/config"
)

func TestOpenStoreSQLite3(t *testing.T) {
	store, closeStore, err := openStore(config.StoreSQLite3)
	require.NoError(t, err)
	defer closeStore()

	require.NoError(t, store.AddDocument("spam", []string{"buy", "now"}))
	require.NoError(t, store.AddDocument("ham", []string{"now"}))
	c, err := store.Counts()
	require.NoError(t, err)
	assert.Equal(t, int64(2), c.TotalPosts)
	assert.Equal(t, map[string]int64{"buy": 1, "now": 2}, c.PostsContaining)

	m := classifier.NewModel(c, nil)
	p, err := m.Predict("buy")
	require.NoError(t, err)
	assert.Equal(t, "spam", p.Label)
}

func TestTrainAndTestSQLite3(t *testing.T) {
	train := writeFile(t, "train.csv", trainCSV)
	test := writeFile(t, "test.csv", testCSV)

	want, code := runApp(t, "--store", "memory", train, test)
	require.Equal(t, 0, code)
	out, code := runApp(t, "--store", "sqlite3", train, test)
	assert.Equal(t, 0, code)
	assert.Equal(t, want, out)
}
