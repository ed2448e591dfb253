package cli

import (
	"github.com/rs/zerolog/log"
)

// load inserts the words of every input file into the context's trie.
func (in *Input) load(ctx *Context) error {
	for _, file := range in.Files {
		before := ctx.Stats.Loaded

		err := parseFile(file, in.WordKey, func(word string) error {
			ctx.Stats.Loaded++
			if ctx.Trie.Insert(word) {
				ctx.Stats.Inserted++
			}
			return nil
		})
		if err != nil {
			return err
		}

		log.Debug().
			Str("file", file).
			Int("words", ctx.Stats.Loaded-before).
			Msg("Loaded word list")
	}
	return nil
}
