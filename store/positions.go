// Package store persists scroll positions across demo sessions in a bbolt file
package store

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	bolt "go.etcd.io/bbolt"
)

const bucketPositions = "positions"

// Coordinate precision kept on disk
const positionPrecision = 3

// ErrNotFound is returned by Load for an unknown key
var ErrNotFound = errors.New("position not found")

// Snapshot is the restorable state of one scroller
type Snapshot struct {
	X, Y           float64
	HorizontalPage int
	VerticalPage   int
}

// Positions is a keyed snapshot table
type Positions struct {
	db *bolt.DB
}

// Open creates or opens the database at path
func Open(path string) (*Positions, error) {
	db, err := bolt.Open(path, 0644, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketPositions))
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Positions{db: db}, nil
}

// Close releases the file lock
func (p *Positions) Close() error {
	return p.db.Close()
}

func marshalSnapshot(s Snapshot) []byte {
	fields := []string{
		strconv.FormatFloat(s.X, 'f', positionPrecision, 64),
		strconv.FormatFloat(s.Y, 'f', positionPrecision, 64),
		strconv.Itoa(s.HorizontalPage),
		strconv.Itoa(s.VerticalPage),
	}
	return []byte(strings.Join(fields, " "))
}

func unmarshalSnapshot(data []byte) (Snapshot, error) {
	f := strings.Fields(string(data))
	if len(f) != 4 {
		return Snapshot{}, fmt.Errorf("malformed snapshot %q", data)
	}
	var s Snapshot
	var err error
	if s.X, err = strconv.ParseFloat(f[0], 64); err != nil {
		return Snapshot{}, err
	}
	if s.Y, err = strconv.ParseFloat(f[1], 64); err != nil {
		return Snapshot{}, err
	}
	if s.HorizontalPage, err = strconv.Atoi(f[2]); err != nil {
		return Snapshot{}, err
	}
	if s.VerticalPage, err = strconv.Atoi(f[3]); err != nil {
		return Snapshot{}, err
	}
	return s, nil
}

// Save replaces the snapshot stored under key
func (p *Positions) Save(key string, s Snapshot) error {
	return p.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketPositions))
		return b.Put([]byte(key), marshalSnapshot(s))
	})
}

// Load returns the snapshot stored under key
func (p *Positions) Load(key string) (Snapshot, error) {
	var s Snapshot
	err := p.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketPositions))
		v := b.Get([]byte(key))
		if v == nil {
			return ErrNotFound
		}
		var err error
		s, err = unmarshalSnapshot(v)
		return err
	})
	return s, err
}

// Delete removes key; deleting a missing key is not an error
func (p *Positions) Delete(key string) error {
	return p.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketPositions))
		return b.Delete([]byte(key))
	})
}

// Keys lists stored keys in order
func (p *Positions) Keys() ([]string, error) {
	var keys []string
	err := p.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketPositions))
		return b.ForEach(func(k, _ []byte) error {
			keys = append(keys, string(k))
			return nil
		})
	})
	sort.Strings(keys)
	return keys, err
}
