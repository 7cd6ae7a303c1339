// Package adminapi é o backend administrativo das aplicações armazenadas em
// uma tabela DynamoDB, executado como Lambda atrás do API Gateway (ou como
// servidor HTTP local para desenvolvimento).
//
// Rotas:
//
//   - OPTIONS em qualquer path: resposta de preflight CORS.
//   - /api/get-all-data: lê a tabela inteira (Scan paginado) e devolve todos os itens.
//   - /api/update-application: aplica um SET por campo do corpo no item identificado por "id".
//   - Qualquer outro path: 404.
//
// Organização:
//
// 1. envloader:
//   - Carregamento de configurações via tags "env" e "envDefault".
//
// 2. dyndb:
//   - Store[T] genérico com Scan paginado por cursor opaco e Update por expressão SET.
//
// 3. pkg/*:
//   - config, awsconf, repository, handlers, router, engine e transport compõem o serviço;
//     logger, metrics, observability e rules são o suporte (zerolog, Datadog, CEL).
//
// Exemplo de configuração mínima (variáveis de ambiente):
//
//	SERVICE_RUNTIME=lambda
//	EXISTING_TABLE=vega-web-contact-table-dev-dev
//	AWS_REGION=sa-east-1
//
// Para rodar localmente contra o DynamoDB Local:
//
//	SERVICE_RUNTIME=local PORT=8080 AWS_ENDPOINT_URL=http://localhost:8000 go run ./cmd/server
package adminapi
