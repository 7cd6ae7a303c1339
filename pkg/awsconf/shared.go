package awsconf

import (
	"context"
	"net"
	"net/http"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/raywall/admin-api/pkg/config"
)

var (
	awsCfg  aws.Config
	awsOnce sync.Once
	awsErr  error
)

// Load carrega a configuração da AWS (env vars, profile, IAM role) uma única vez
// por processo. Invocações seguintes da Lambda reaproveitam o mesmo cliente HTTP
// e, portanto, o pool de conexões.
func Load(ctx context.Context, cfg config.AWSConf) (aws.Config, error) {
	awsOnce.Do(func() {
		awsCfg, awsErr = awsconfig.LoadDefaultConfig(ctx, loadOptions(cfg)...)
	})
	return awsCfg, awsErr
}

func loadOptions(cfg config.AWSConf) []func(*awsconfig.LoadOptions) error {
	// connect timeout no dial/TLS, read timeout na espera pelos headers de resposta
	httpClient := awshttp.NewBuildableClient().
		WithDialerOptions(func(d *net.Dialer) {
			d.Timeout = cfg.ConnectTimeout
		}).
		WithTransportOptions(func(tr *http.Transport) {
			tr.TLSHandshakeTimeout = cfg.ConnectTimeout
			tr.ResponseHeaderTimeout = cfg.ReadTimeout
		})

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithHTTPClient(httpClient),
	}
	if cfg.MaxAttempts > 0 {
		opts = append(opts, awsconfig.WithRetryMaxAttempts(cfg.MaxAttempts))
	}
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}
	return opts
}

// NewDynamoClient cria o cliente DynamoDB. endpoint permite apontar para
// DynamoDB Local / LocalStack durante o desenvolvimento.
func NewDynamoClient(awsCfg aws.Config, endpoint string) *dynamodb.Client {
	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})
}
