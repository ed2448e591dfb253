package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// ContainsCmd looks words up after loading the input files.
type ContainsCmd struct {
	Input

	Words []string `name:"word" short:"w" required:"" sep:"none" help:"Word to look up, repeatable"`
}

// Run prints one "word<TAB>true|false" line per looked up word.
func (cmd *ContainsCmd) Run(ctx *Context) error {
	if err := cmd.load(ctx); err != nil {
		return err
	}

	for _, word := range cmd.Words {
		if _, err := fmt.Fprintf(ctx.Out, "%s\t%t\n", word, ctx.Trie.Contains(word)); err != nil {
			return err
		}
	}

	log.Info().EmbedObject(ctx.Stats).Int("queried", len(cmd.Words)).Msg("Lookup complete")
	return nil
}
