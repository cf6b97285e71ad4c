package main

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
	log "github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"

	classifier "github.com/samuel/go-postclassifier"
	"github.com/samuel/go-postclassifier/internal/config"
)

// openStore returns the count store named by kind and a function that
// releases it. SQLite stores live in memory for the duration of the run.
func openStore(kind string) (classifier.Store, func() error, error) {
	log.WithField("store", kind).Debugln("opening count store")
	switch kind {
	case config.StoreSQLite, config.StoreSQLite3:
		db, err := sql.Open(kind, ":memory:")
		if err != nil {
			return nil, nil, err
		}
		// Every connection to :memory: is a separate database.
		db.SetMaxOpenConns(1)
		s, err := classifier.NewSQLStore(db)
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		return s, db.Close, nil
	default:
		return classifier.NewLocalStore(), func() error { return nil }, nil
	}
}
