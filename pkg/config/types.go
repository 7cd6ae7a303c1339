package config

import "time"

// DefaultTableName é a tabela usada quando EXISTING_TABLE não está definida.
const DefaultTableName = "vega-web-contact-table-dev-dev"

// ServiceConfig representa a configuração completa do serviço.
//
// Os valores podem vir de um arquivo YAML (CONFIG_FILE_PATH) e são
// sobrescritos por variáveis de ambiente (tags env).
type ServiceConfig struct {
	Service ServiceDetails `yaml:"service"`
	Table   TableConf      `yaml:"table"`
	AWS     AWSConf        `yaml:"aws"`
	Logging LoggingConf    `yaml:"logging"`
	Metrics MetricsConf    `yaml:"metrics"`
	Update  UpdateConf     `yaml:"update"`
}

// ServiceDetails contém os metadados e configurações de runtime do serviço.
type ServiceDetails struct {
	Name    string `yaml:"name" env:"SERVICE_NAME" envDefault:"admin-api" validate:"required,hostname_rfc1123"`
	Runtime string `yaml:"runtime" env:"SERVICE_RUNTIME" envDefault:"lambda" validate:"required,oneof=lambda local"`
	Port    int    `yaml:"port" env:"PORT" envDefault:"8080" validate:"required_if=Runtime local"`
}

type TableConf struct {
	Name string `yaml:"name" env:"EXISTING_TABLE" envDefault:"vega-web-contact-table-dev-dev" validate:"required"`
	// Parameter, quando definido, resolve o nome da tabela no SSM Parameter Store.
	Parameter string `yaml:"parameter" env:"EXISTING_TABLE_PARAMETER"`
	HashKey   string `yaml:"hash_key" env:"TABLE_HASH_KEY" envDefault:"id" validate:"required"`
	PageSize  int32  `yaml:"page_size" env:"SCAN_PAGE_SIZE" validate:"gte=0"`
}

type AWSConf struct {
	Region         string        `yaml:"region" env:"AWS_REGION"`
	Endpoint       string        `yaml:"endpoint" env:"AWS_ENDPOINT_URL" validate:"omitempty,url"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" env:"AWS_CONNECT_TIMEOUT" envDefault:"10s" validate:"gt=0"`
	ReadTimeout    time.Duration `yaml:"read_timeout" env:"AWS_READ_TIMEOUT" envDefault:"10s" validate:"gt=0"`
	MaxAttempts    int           `yaml:"max_attempts" env:"AWS_MAX_ATTEMPTS" envDefault:"4" validate:"gte=1"`
}

// LoggingConf usa Disabled (e não Enabled) para que o valor zero seja o padrão
// e um "false" vindo do YAML não seja confundido com campo ausente.
type LoggingConf struct {
	Disabled bool   `yaml:"disabled" env:"LOG_DISABLED"`
	Level    string `yaml:"level" env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
	Format   string `yaml:"format" env:"LOG_FORMAT" envDefault:"json" validate:"oneof=json console"`
}

type MetricsConf struct {
	Datadog DatadogConf `yaml:"datadog"`
}

type DatadogConf struct {
	Enabled   bool   `yaml:"enabled" env:"DD_ENABLED"`
	Addr      string `yaml:"addr" env:"DD_AGENT_HOST" validate:"required_if=Enabled true"`
	Namespace string `yaml:"namespace" env:"DD_NAMESPACE" envDefault:"admin_api."`
}

// UpdateConf controla a política aplicada aos campos de uma atualização.
// Sem AllowedFields e sem Rule o patch é livre (qualquer atributo exceto id).
type UpdateConf struct {
	AllowedFields []string `yaml:"allowed_fields" env:"UPDATE_ALLOWED_FIELDS"`
	Rule          string   `yaml:"rule" env:"UPDATE_RULE"`
}

// RegionOrDefault devolve a região para fins de log.
func (a AWSConf) RegionOrDefault() string {
	if a.Region == "" {
		return "not set"
	}
	return a.Region
}
