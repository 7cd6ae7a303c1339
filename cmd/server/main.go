package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/joho/godotenv"
	"github.com/raywall/admin-api/pkg/engine"
	"github.com/raywall/admin-api/pkg/transport"
	"github.com/rs/zerolog/log"
)

var (
	configPath string
	// Variáveis injetáveis para mocking
	serverStarter = transport.StartHTTPServer
	lambdaStarter = lambda.Start
	engineBuilder = engine.Bootstrap
)

func init() {
	// Opcional: sem arquivo, a configuração vem só do ambiente
	configPath = os.Getenv("CONFIG_FILE_PATH")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := loadDotEnv(); err != nil {
		log.Fatal().Err(err).Msg("falha ao carregar .env")
	}

	if err := run(ctx, configPath); err != nil {
		log.Fatal().Err(err).Msg("falha na inicialização")
	}
}

// loadDotEnv só faz sentido fora da Lambda; arquivo ausente não é erro.
func loadDotEnv() error {
	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		return nil
	}
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// run contém a lógica principal testável
func run(ctx context.Context, cfgPath string) error {
	cfg, err := engine.LoadConfig(ctx, cfgPath)
	if err != nil {
		return err
	}

	svcEngine, err := engineBuilder(ctx, cfg)
	if err != nil {
		return err
	}
	log.Logger = svcEngine.Logger

	switch cfg.Service.Runtime {
	case "local":
		return serverStarter(ctx, svcEngine)
	case "lambda":
		handler := transport.NewLambdaHandler(svcEngine)
		lambdaStarter(handler.Handle)
		return nil
	default:
		// inalcançável: o validator restringe Runtime
		return fmt.Errorf("runtime desconhecido: %s", cfg.Service.Runtime)
	}
}
