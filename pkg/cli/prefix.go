package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
)

// PrefixCmd enumerates stored words by prefix after loading the input files.
type PrefixCmd struct {
	Input

	Prefix string   `short:"p" help:"Prefix to match, empty matches every word"`
	Remove []string `short:"r" sep:"none" help:"Word to remove before matching, repeatable"`
	Format string   `short:"f" help:"Output format" enum:"text,csv,json,yaml" default:"text"`
	Output string   `short:"o" help:"Output file, - for stdout" default:"-"`
}

// Run writes every matching word in traversal order.
func (cmd *PrefixCmd) Run(ctx *Context) error {
	writer, err := NewWriter(cmd.Format, cmd.WordKey)
	if err != nil {
		return err
	}

	if err := cmd.load(ctx); err != nil {
		return err
	}

	for _, word := range cmd.Remove {
		if ctx.Trie.Remove(word) {
			ctx.Stats.Removed++
		} else {
			log.Warn().Str("word", word).Msg("Word to remove is not stored")
		}
	}

	words := ctx.Trie.StartsWith(cmd.Prefix)

	if cmd.Output == "-" {
		err = writer.Write(ctx.Out, words)
	} else {
		err = writeFile(cmd.Output, writer, words)
	}
	if err != nil {
		return fmt.Errorf("writing results: %w", err)
	}
	ctx.Stats.Output = len(words)

	log.Info().EmbedObject(ctx.Stats).Str("prefix", cmd.Prefix).Msg("Prefix search complete")
	return nil
}

func writeFile(path string, writer Writer, words []string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := writer.Write(file, words); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
