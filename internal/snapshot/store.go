package snapshot

import (
	"errors"
	"image"
	"log"
	"strings"
)

// Preferences is the subset of fyne.Preferences the store needs.
type Preferences interface {
	String(key string) string
	SetString(key string, value string)
	RemoveValue(key string)
}

// Store keeps the latest snapshot under a single fixed key.
type Store struct {
	prefs Preferences
	key   string
}

func NewStore(prefs Preferences, key string) (*Store, error) {
	if prefs == nil {
		return nil, errors.New("snapshot: no preference store")
	}
	if strings.TrimSpace(key) == "" {
		return nil, errors.New("snapshot: empty storage key")
	}
	return &Store{prefs: prefs, key: key}, nil
}

func (s *Store) Key() string { return s.key }

// Save encodes img and overwrites the stored value.
func (s *Store) Save(img image.Image) error {
	uri, err := Encode(img)
	if err != nil {
		return err
	}
	s.prefs.SetString(s.key, uri)
	return nil
}

// Load returns the stored data URI, if any.
func (s *Store) Load() (string, bool) {
	uri := s.prefs.String(s.key)
	return uri, uri != ""
}

func (s *Store) Remove() {
	s.prefs.RemoveValue(s.key)
	log.Printf("[SNAPSHOT] Removed %q", s.key)
}
