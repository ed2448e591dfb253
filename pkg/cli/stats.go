package cli

import "github.com/rs/zerolog"

// Stats counts what a command did to the trie.
type Stats struct {
	Loaded   int // words read from input files
	Inserted int // words that were not stored yet
	Removed  int
	Output   int // words written
}

func (s *Stats) MarshalZerologObject(e *zerolog.Event) {
	e.Int("loaded", s.Loaded).
		Int("inserted", s.Inserted).
		Int("removed", s.Removed).
		Int("output", s.Output)
}
