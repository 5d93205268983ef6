package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init configura o logger global. Fora de produção a saída é legível
// no terminal; em produção, JSON.
func Init(level string, production bool) {
	zerolog.TimeFieldFormat = time.RFC3339

	if !production {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	SetLevel(level)
}

// SetLevel aplica o nível informado; valores inválidos caem em info.
func SetLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
		log.Warn().Str("loglevel", level).Msg("invalid log level, using info")
	}

	zerolog.SetGlobalLevel(lvl)
	return lvl
}
