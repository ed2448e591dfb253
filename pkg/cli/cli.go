package cli

import (
	"io"

	"github.com/khalid-nowaf/wordtrie/pkg/trie"
)

// CLI is the command tree of the wordtrie binary.
type CLI struct {
	Globals

	Contains ContainsCmd `cmd:"" help:"Report whether words are stored in the loaded word lists"`
	Prefix   PrefixCmd   `cmd:"" help:"List the stored words starting with a prefix"`
}

// Globals are the flags shared by every command.
type Globals struct {
	LogLevel  string `help:"Log level" enum:"trace,debug,info,warn,error" default:"info"`
	LogFormat string `help:"Log format" enum:"text,json" default:"text"`
}

// Input names the word lists a command loads before it runs.
type Input struct {
	Files   []string `arg:"" type:"existingfile" sep:"none" help:"Word list files (.txt, .csv, .tsv, .json, .yaml)"`
	WordKey string   `help:"Column or key holding the word in CSV, JSON and YAML records" default:"word"`
}

// Context is bound to every command's Run method.
type Context struct {
	Trie  *trie.Trie
	Out   io.Writer
	Stats *Stats
}

func NewContext(out io.Writer) *Context {
	return &Context{
		Trie:  trie.New(),
		Out:   out,
		Stats: &Stats{},
	}
}
