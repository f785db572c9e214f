// Package selectordb persists a reverse index from derived selectors and
// event topic hashes back to the canonical signatures that produced them,
// for decoders and log tooling that see only the on-chain bytes.
package selectordb

import (
	"fmt"

	"github.com/boltdb/bolt"

	"github.com/boolw/go-abi/abi"
)

var (
	selectorBucket = []byte("selectors")
	topicBucket    = []byte("topics")
)

// Store is a boltdb-backed selector index.
type Store struct {
	db *bolt.DB
}

// Open opens or creates a selector database at path.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(selectorBucket); err != nil {
			return err
		}
		_, err := tx.CreateBucketIfNotExists(topicBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// PutFunction records the function's 4-byte selector.
func (s *Store) PutFunction(f *abi.Function) error {
	return s.putSelector(f.Selector(), f.Signature())
}

// PutError records the error's 4-byte selector.
func (s *Store) PutError(e *abi.Error) error {
	return s.putSelector(e.Selector(), e.Signature())
}

// PutEvent records the event's 32-byte topic hash.
func (s *Store) PutEvent(e *abi.Event) error {
	h := e.Selector()
	sig := e.Signature()
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(topicBucket).Put(h[:], []byte(sig))
	})
}

func (s *Store) putSelector(sel abi.Selector, sig string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(selectorBucket).Put(sel[:], []byte(sig))
	})
}

// IndexABI records every function, event and error of a parsed ABI.
func (s *Store) IndexABI(a *abi.ABI) error {
	for _, f := range a.Functions {
		if err := s.PutFunction(f); err != nil {
			return err
		}
	}
	for _, e := range a.Events {
		if err := s.PutEvent(e); err != nil {
			return err
		}
	}
	for _, e := range a.Errors {
		if err := s.PutError(e); err != nil {
			return err
		}
	}
	return nil
}

// Signature returns the signature recorded for a 4-byte selector.
func (s *Store) Signature(sel abi.Selector) (string, error) {
	var sig string
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(selectorBucket).Get(sel[:])
		if v == nil {
			return fmt.Errorf("unknown selector %s", sel.Hex())
		}
		sig = string(v)
		return nil
	})
	return sig, err
}

// TopicSignature returns the signature recorded for an event topic hash.
func (s *Store) TopicSignature(h abi.Hash) (string, error) {
	var sig string
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(topicBucket).Get(h[:])
		if v == nil {
			return fmt.Errorf("unknown topic %s", h.Hex())
		}
		sig = string(v)
		return nil
	})
	return sig, err
}
