// Package cache is a small on-disk memo of solved (puzzle, goal) pairs,
// backed by LevelDB exactly the way db/leveldb.go backs its key-value
// store: open once at startup, Get/Put with the stdlib byte-slice API, no
// transactions.
package cache

import (
	"encoding/binary"
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/errors"
)

// Cache memoizes search results keyed by a fingerprint of the
// (puzzle, goal) input pair, so repeated requests for the same puzzle skip
// the BFS entirely.
type Cache struct {
	db *leveldb.DB
}

// Open opens (creating if necessary) the LevelDB database at path.
func Open(path string) (*Cache, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("open cache %q: %w", path, err)
	}
	return &Cache{db: db}, nil
}

// Close releases the underlying database handle.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Entry is the cached outcome of a solve.
type Entry struct {
	Solved         bool
	Depth          int
	StatesExplored int
}

// Get returns the cached entry for key, and whether one was found.
func (c *Cache) Get(key string) (Entry, bool, error) {
	raw, err := c.db.Get([]byte(key), nil)
	if err != nil {
		if err == errors.ErrNotFound {
			return Entry{}, false, nil
		}
		return Entry{}, false, err
	}
	if len(raw) != 9 {
		return Entry{}, false, fmt.Errorf("corrupt cache entry for key %q", key)
	}
	e := Entry{
		Solved:         raw[0] != 0,
		Depth:          int(binary.BigEndian.Uint32(raw[1:5])),
		StatesExplored: int(binary.BigEndian.Uint32(raw[5:9])),
	}
	return e, true, nil
}

// Put stores e under key, overwriting any previous entry.
func (c *Cache) Put(key string, e Entry) error {
	raw := make([]byte, 9)
	if e.Solved {
		raw[0] = 1
	}
	binary.BigEndian.PutUint32(raw[1:5], uint32(e.Depth))
	binary.BigEndian.PutUint32(raw[5:9], uint32(e.StatesExplored))
	return c.db.Put([]byte(key), raw, nil)
}
