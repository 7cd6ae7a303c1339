package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/raywall/admin-api/pkg/config"
	"github.com/rs/zerolog"
)

// Configure inicializa o nível global e devolve o logger base do serviço.
func Configure(cfg config.LoggingConf, service string) zerolog.Logger {
	return configure(cfg, service, os.Stdout)
}

func configure(cfg config.LoggingConf, service string, out io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	// JSON para CloudWatch, console "bonito" para execução local
	output := out
	if cfg.Disabled {
		output = io.Discard
	} else if cfg.Format == "console" {
		output = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	ctx := zerolog.New(output).With().Timestamp()
	if service != "" {
		ctx = ctx.Str("service", service)
	}
	return ctx.Logger()
}
