package engine

import (
	"context"
	"net/url"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/raywall/admin-api/pkg/awsconf"
	"github.com/raywall/admin-api/pkg/config"
)

// LoadConfig carrega a configuração aceitando arquivo local, s3://bucket/key e
// dynamodb://tabela/chave, com interpolação ${env.*}, ${ssm.*} e ${secret.*}.
// A configuração AWS só é carregada se alguma fonte remota for usada.
func LoadConfig(ctx context.Context, source string) (*config.ServiceConfig, error) {
	var (
		once   sync.Once
		awsCfg aws.Config
		awsErr error
	)
	base := func() (aws.Config, error) {
		once.Do(func() { awsCfg, awsErr = awsconf.LoadBootstrap(ctx) })
		return awsCfg, awsErr
	}

	return newConfigLoader(base).Load(ctx, source)
}

func newConfigLoader(base func() (aws.Config, error)) *config.Loader {
	return config.NewLoader().
		WithFetcher("s3", func(ctx context.Context, u *url.URL) ([]byte, error) {
			cfg, err := base()
			if err != nil {
				return nil, err
			}
			return awsconf.FetchS3Object(ctx, s3.NewFromConfig(cfg), u)
		}).
		WithFetcher("dynamodb", func(ctx context.Context, u *url.URL) ([]byte, error) {
			cfg, err := base()
			if err != nil {
				return nil, err
			}
			return awsconf.FetchDynamoItem(ctx, dynamodb.NewFromConfig(cfg), u)
		}).
		WithResolver("ssm", func(ctx context.Context, key string) (string, error) {
			cfg, err := base()
			if err != nil {
				return "", err
			}
			return awsconf.ResolveParameter(ctx, awsconf.NewSSMClient(cfg), key)
		}).
		WithResolver("secret", func(ctx context.Context, key string) (string, error) {
			cfg, err := base()
			if err != nil {
				return "", err
			}
			return awsconf.ResolveSecret(ctx, secretsmanager.NewFromConfig(cfg), key)
		})
}
