// Package sqlite provides a fixed-capacity, SQLite-backed slot store that
// satisfies [wheel.Store]. It exists for buffers whose window should outlive
// the process: the buffer itself stays oblivious to where its slots live.
//
// The [wheel.Store] contract has no error returns, so the store keeps a
// sticky error instead: the first failed read or write is recorded, later
// calls become no-ops, and [Store.Err] reports it. Check Err after the
// operations whose slots matter.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"net/url"

	_ "github.com/mattn/go-sqlite3"

	"github.com/teenjuna/wheel"
	"github.com/teenjuna/wheel/codec"
	"github.com/teenjuna/wheel/internal"
)

var (
	// ErrCapacityMismatch is returned by [New] when an existing database was
	// created with a different capacity than the configured one.
	ErrCapacityMismatch = errors.New("capacity differs from the stored one")
)

const (
	memory = ":memory:"
)

// Store is a fixed-length slot store backed by SQLite. Items are serialized
// into slot blobs by a [codec.Codec].
type Store[Item any] struct {
	cfg      *Config
	db       *sql.DB
	codec    codec.Codec[Item]
	capacity int
	err      error
}

var _ wheel.Store[any] = (*Store[any])(nil)

// New opens (or creates) a slot store.
//
// Default configuration:
//   - File: ":memory:" (in-memory database)
//   - Capacity: 0
//
// The capacity of a database is fixed when it is first created. Reopening an
// existing file adopts its stored capacity; if [WithCapacity] was configured
// and disagrees, New fails with [ErrCapacityMismatch].
func New[Item any](codec codec.Codec[Item], configFuncs ...ConfigFunc) (*Store[Item], error) {
	if codec == nil {
		panic("codec can't be nil")
	}

	cfg := &Config{file: memory}
	for _, cf := range configFuncs {
		cf(cfg)
	}

	db, err := open(cfg)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}

	if err := setup(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("setup: %w", err)
	}

	capacity, err := loadCapacity(db, cfg)
	if err != nil {
		db.Close()
		return nil, err
	}

	store := Store[Item]{
		cfg:      cfg,
		db:       db,
		codec:    codec,
		capacity: capacity,
	}

	return &store, nil
}

// Len returns the number of slots. It is fixed at creation time.
func (s *Store[Item]) Len() int {
	return s.capacity
}

// At returns the item in slot i. A slot that was never written decodes to
// the zero item; a buffer on top of this store never reads such slots.
func (s *Store[Item]) At(i int) Item {
	var zero Item
	if s.err != nil {
		return zero
	}

	var data []byte
	err := s.db.QueryRow(
		`select data from slot where idx = :idx`,
		sql.Named("idx", i),
	).Scan(&data)
	if err == sql.ErrNoRows {
		return zero
	} else if err != nil {
		s.err = fmt.Errorf("read slot %d: %w", i, err)
		return zero
	}

	item, err := s.codec.Decode(data)
	if err != nil {
		s.err = fmt.Errorf("decode slot %d: %w", i, err)
		return zero
	}

	return item
}

// Set overwrites slot i with item.
func (s *Store[Item]) Set(i int, item Item) {
	if s.err != nil {
		return
	}

	data, err := s.codec.Encode(item)
	if err != nil {
		s.err = fmt.Errorf("encode slot %d: %w", i, err)
		return
	}

	_, err = s.db.Exec(
		`
		insert into slot (idx, data) values (:idx, :data)
		on conflict (idx) do update set data = excluded.data
		`,
		sql.Named("idx", i),
		sql.Named("data", data),
	)
	if err != nil {
		s.err = fmt.Errorf("write slot %d: %w", i, err)
	}
}

// Err returns the first error encountered by At or Set, or nil.
func (s *Store[Item]) Err() error {
	return s.err
}

// Close closes the underlying SQLite database.
func (s *Store[Item]) Close() error {
	return s.db.Close()
}

func open(cfg *Config) (*sql.DB, error) {
	params := url.Values{}
	params.Add("_txlock", "immediate")
	params.Add("_timeout", "5000") // 5s

	file := cfg.file
	if file == memory {
		file = internal.GenerateID()
		params.Add("mode", "memory")
		params.Add("cache", "shared")
	} else {
		params.Add("_journal", "wal")
		if cfg.durable {
			params.Add("_sync", "full")
		} else {
			params.Add("_sync", "normal")
		}
	}

	db, err := sql.Open("sqlite3", "file:"+file+"?"+params.Encode())
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func setup(db *sql.DB) error {
	_, err := db.Exec(
		`
		create table if not exists slot (
			idx  integer primary key,
			data blob not null
		) without rowid;

		create table if not exists meta (
			key   text primary key,
			value integer not null
		) without rowid;
		`,
	)
	return err
}

func loadCapacity(db *sql.DB, cfg *Config) (int, error) {
	var stored int
	err := db.QueryRow(
		`select value from meta where key = 'capacity'`,
	).Scan(&stored)

	if err == sql.ErrNoRows {
		_, err := db.Exec(
			`insert into meta (key, value) values ('capacity', :capacity)`,
			sql.Named("capacity", cfg.capacity),
		)
		if err != nil {
			return 0, fmt.Errorf("store capacity: %w", err)
		}
		return cfg.capacity, nil
	} else if err != nil {
		return 0, fmt.Errorf("load capacity: %w", err)
	}

	if cfg.capacitySet && cfg.capacity != stored {
		return 0, fmt.Errorf("%w: configured %d, stored %d", ErrCapacityMismatch, cfg.capacity, stored)
	}

	return stored, nil
}
