package cli

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ConfigureLogging sets up the global log.Logger from the command line flags.
// Logs always go to stderr so they never mix with command output.
func ConfigureLogging(g Globals) error {
	level, err := zerolog.ParseLevel(g.LogLevel)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(level)

	if g.LogFormat == "text" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		return nil
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.LevelFieldMarshalFunc = func(l zerolog.Level) string {
		return strings.ToUpper(l.String())
	}
	log.Logger = zerolog.New(os.Stderr).With().
		Str("app", "wordtrie").
		Timestamp().
		Logger()
	return nil
}
