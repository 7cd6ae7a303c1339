package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/raywall/admin-api/pkg/engine"
	"github.com/raywall/admin-api/pkg/transport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRun_LocalRuntime(t *testing.T) {
	t.Setenv("AWS_REGION", "us-east-1")
	path := writeConfig(t, `
service:
  name: boot-test
  runtime: local
  port: 9999
table:
  name: applications-local
logging:
  disabled: true
`)

	called := false
	originalStarter := serverStarter
	serverStarter = func(ctx context.Context, svc *engine.ServiceEngine) error {
		called = true
		assert.Equal(t, "boot-test", svc.Config.Service.Name)
		assert.Equal(t, 9999, svc.Config.Service.Port)
		assert.Equal(t, "applications-local", svc.Table.TableName())
		return nil
	}
	defer func() { serverStarter = originalStarter }()

	require.NoError(t, run(context.Background(), path))
	assert.True(t, called, "o servidor HTTP não foi iniciado")
}

func TestRun_LambdaRuntime(t *testing.T) {
	t.Setenv("AWS_REGION", "us-east-1")
	t.Setenv("SERVICE_RUNTIME", "lambda")
	t.Setenv("LOG_DISABLED", "true")

	var registered interface{}
	originalStarter := lambdaStarter
	lambdaStarter = func(handler interface{}) { registered = handler }
	defer func() { lambdaStarter = originalStarter }()

	require.NoError(t, run(context.Background(), ""))
	require.NotNil(t, registered)
	assert.IsType(t, (&transport.LambdaHandler{}).Handle, registered)
}

func TestRun_InvalidConfig(t *testing.T) {
	t.Setenv("SERVICE_RUNTIME", "ec2")

	err := run(context.Background(), "")
	assert.Error(t, err)
}

func TestRun_MissingFile(t *testing.T) {
	err := run(context.Background(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "falha leitura config")
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	// sem arquivo
	require.NoError(t, loadDotEnv())

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("ADMIN_API_DOTENV_TEST=ok\n"), 0o600))
	// t.Setenv registra a restauração; godotenv não sobrescreve variáveis existentes
	t.Setenv("ADMIN_API_DOTENV_TEST", "")
	require.NoError(t, os.Unsetenv("ADMIN_API_DOTENV_TEST"))
	require.NoError(t, loadDotEnv())
	assert.Equal(t, "ok", os.Getenv("ADMIN_API_DOTENV_TEST"))
}
