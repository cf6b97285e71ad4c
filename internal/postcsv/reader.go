// Package postcsv reads posts from comma-separated files whose first row
// names the fields.
package postcsv

import (
	"encoding/csv"
	"errors"
	"io"
	"os"

	classifier "github.com/samuel/go-postclassifier"
)

// Reader is a classifier.PostSource over CSV rows.
type Reader struct {
	name   string
	r      *csv.Reader
	header []string
	closer io.Closer
}

// Open opens the CSV file at path and reads its header.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &classifier.SourceUnavailableError{Source: path, Err: err}
	}
	r, err := NewReader(f, path)
	if err != nil {
		f.Close()
		return nil, err
	}
	r.closer = f
	return r, nil
}

// NewReader reads the header row from r. name identifies the source in errors.
func NewReader(r io.Reader, name string) (*Reader, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err == io.EOF {
		return nil, &classifier.SourceUnavailableError{Source: name, Err: errors.New("missing header row")}
	} else if err != nil {
		return nil, &classifier.SourceUnavailableError{Source: name, Err: err}
	}
	// Every row must have as many fields as the header.
	cr.FieldsPerRecord = len(header)
	cr.ReuseRecord = true
	return &Reader{
		name:   name,
		r:      cr,
		header: append([]string(nil), header...),
	}, nil
}

// Header returns the field names.
func (r *Reader) Header() []string {
	return append([]string(nil), r.header...)
}

// Next returns the next row keyed by the header's field names, or io.EOF.
func (r *Reader) Next() (map[string]string, error) {
	row, err := r.r.Read()
	if err == io.EOF {
		return nil, io.EOF
	} else if err != nil {
		return nil, &classifier.SourceUnavailableError{Source: r.name, Err: err}
	}
	rec := make(map[string]string, len(r.header))
	for i, h := range r.header {
		rec[h] = row[i]
	}
	return rec, nil
}

// Close closes the underlying file, if Open created it.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}
