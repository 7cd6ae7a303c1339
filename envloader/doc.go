// Copyright 2025 Raywall Malheiros de Souza
// Licensed under the Mozilla Public License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	https://www.mozilla.org/en-US/MPL/2.0/
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// Package envloader carrega variáveis de ambiente para campos de uma struct
// usando as tags `env` e `envDefault`.
//
// Tipos suportados: string, int*, uint*, bool, float*, time.Duration e
// []string (valores separados por vírgula). Structs aninhadas e ponteiros
// para struct são processados recursivamente.
//
// O valor de `envDefault` só é aplicado quando o campo ainda está zerado,
// de modo que uma configuração lida de arquivo antes de Load é preservada
// e o ambiente continua tendo a palavra final:
//
//	type Config struct {
//		Table   string        `yaml:"table" env:"EXISTING_TABLE" envDefault:"applications"`
//		Timeout time.Duration `yaml:"timeout" env:"AWS_READ_TIMEOUT" envDefault:"10s"`
//		Fields  []string      `yaml:"fields" env:"UPDATE_ALLOWED_FIELDS"`
//	}
//
//	var cfg Config
//	_ = yaml.Unmarshal(raw, &cfg)
//	if err := envloader.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
package envloader
