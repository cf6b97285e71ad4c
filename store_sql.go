package classifier

import (
	"database/sql"
)

const (
	labelsTable = "labels"
	wordsTable  = "words"

	createLabelsTable = `CREATE TABLE IF NOT EXISTS ` + labelsTable + ` (
        "id" INTEGER PRIMARY KEY ASC,
        "name" TEXT NOT NULL,
        "post_count" INTEGER NOT NULL DEFAULT 0,
        UNIQUE("name"))`
	createWordsTable = `CREATE TABLE IF NOT EXISTS ` + wordsTable + ` (
        "id" INTEGER PRIMARY KEY ASC,
        "label_id" INTEGER NOT NULL,
        "word" TEXT NOT NULL,
        "post_count" INTEGER NOT NULL DEFAULT 0,
        FOREIGN KEY("label_id") REFERENCES ` + labelsTable + `("id"),
        UNIQUE("label_id", "word"))`

	labelsQuery                  = `SELECT "name", "post_count" FROM ` + labelsTable
	wordsQuery                   = `SELECT l."name", w."word", w."post_count" FROM ` + wordsTable + ` w JOIN ` + labelsTable + ` l ON l."id" = w."label_id"`
	insertLabelQuery             = `INSERT OR IGNORE INTO ` + labelsTable + ` ("name", "post_count") VALUES (?, 0)`
	updatePostCountQuery         = `UPDATE ` + labelsTable + ` SET "post_count" = "post_count" + 1 WHERE "name" = ?`
	labelIDQuery                 = `SELECT "id" FROM ` + labelsTable + ` WHERE "name" = ?`
	updateOrInsertWordCountQuery = `INSERT OR REPLACE INTO ` + wordsTable + ` ("label_id", "word", "post_count") VALUES (?, ?, 1 + COALESCE((SELECT "post_count" FROM ` + wordsTable + ` WHERE "label_id" = ? AND "word" = ?), 0))`
)

type sqlStore struct {
	db               *sql.DB
	labelsQuery      *sql.Stmt
	wordsQuery       *sql.Stmt
	insertLabelQuery *sql.Stmt
}

// NewSQLStore returns an SQL database backed Store. The tables are created if
// they don't exist. Only per-label counts are stored; corpus-wide counts are
// derived from them when Counts is called.
func NewSQLStore(db *sql.DB) (Store, error) {
	for _, q := range []string{createLabelsTable, createWordsTable} {
		if _, err := db.Exec(q); err != nil {
			return nil, err
		}
	}
	s := &sqlStore{
		db: db,
	}
	var err error
	s.labelsQuery, err = db.Prepare(labelsQuery)
	if err != nil {
		return nil, err
	}
	s.wordsQuery, err = db.Prepare(wordsQuery)
	if err != nil {
		return nil, err
	}
	s.insertLabelQuery, err = db.Prepare(insertLabelQuery)
	return s, err
}

func (s *sqlStore) AddDocument(label string, tokens []string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Stmt(s.insertLabelQuery).Exec(label); err != nil {
		tx.Rollback()
		return err
	}
	if _, err := tx.Exec(updatePostCountQuery, label); err != nil {
		tx.Rollback()
		return err
	}
	row := tx.QueryRow(labelIDQuery, label)
	var labelID int64
	if err := row.Scan(&labelID); err != nil {
		tx.Rollback()
		return err
	}
	for _, t := range tokens {
		if _, err := tx.Exec(updateOrInsertWordCountQuery, labelID, t, labelID, t); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func (s *sqlStore) Counts() (*Counts, error) {
	c := newCounts()

	rows, err := s.labelsQuery.Query()
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var name string
		var n int64
		if err := rows.Scan(&name, &n); err != nil {
			return nil, err
		}
		c.PostsWithLabel[name] = n
		c.PostsWithLabelContaining[name] = make(map[string]int64)
		c.TotalPosts += n
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = s.wordsQuery.Query()
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var label, word string
		var n int64
		if err := rows.Scan(&label, &word, &n); err != nil {
			return nil, err
		}
		wc, ok := c.PostsWithLabelContaining[label]
		if !ok || n > c.PostsWithLabel[label] {
			return nil, ErrStoreCountInvalid
		}
		wc[word] = n
		// Every post carries exactly one label.
		c.PostsContaining[word] += n
	}
	return c, rows.Err()
}
