package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init installs a console logger on stderr. Debug lowers the level so that
// per-range events become visible.
func Init(debug bool) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	SetOutput(os.Stderr)
}

// Get returns a child of the global logger tagged with the given component.
func Get(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}

// SetOutput redirects the global logger to w.
func SetOutput(w io.Writer) {
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.DateTime,
	}
	log.Logger = zerolog.New(output).With().Timestamp().Logger()
}
