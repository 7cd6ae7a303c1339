package awsconf

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

// SSMClient abstrai o SDK (permite Mocking)
type SSMClient interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

// NewSSMClient cria o cliente real a partir da configuração compartilhada.
func NewSSMClient(awsCfg aws.Config) *ssm.Client {
	return ssm.NewFromConfig(awsCfg)
}

// ResolveParameter lê um parâmetro (String ou SecureString) do Parameter Store.
func ResolveParameter(ctx context.Context, client SSMClient, name string) (string, error) {
	out, err := client.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(name),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("erro no SSM GetParameter (%s): %w", name, err)
	}
	if out.Parameter == nil || aws.ToString(out.Parameter.Value) == "" {
		return "", fmt.Errorf("parâmetro SSM vazio: %s", name)
	}
	return aws.ToString(out.Parameter.Value), nil
}
