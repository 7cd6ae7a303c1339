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
// Package dyndb fornece uma abstração genérica e tipada sobre o cliente
// DynamoDB do AWS SDK Go v2.
//
// O Store[T] expõe apenas o que um backend de administração precisa: uma
// leitura paginada (Scan) e uma atualização parcial (Update) que devolve o
// item completo (ReturnValues=ALL_NEW).
//
// Paginação:
// O LastEvaluatedKey do DynamoDB é convertido em um cursor opaco (base64)
// que preserva o tipo de cada atributo de chave (S, N ou B). Um cursor vazio
// indica que não há mais páginas.
//
//	store := dyndb.New[models.Record](client, dyndb.TableConfig[models.Record]{
//		TableName: "applications",
//		HashKey:   "id",
//	})
//
//	token := ""
//	for {
//		items, next, err := store.Scan().Limit(100).LastKey(token).Exec(ctx)
//		if err != nil {
//			return err
//		}
//		all = append(all, items...)
//		if next == "" {
//			break
//		}
//		token = next
//	}
//
// Atualização:
// Cada campo vira uma atribuição SET com placeholders (#campo = :campo).
// Os nomes são tratados como atributos de primeiro nível, sem quebra em
// pontos, então "a.b" atualiza o atributo literal "a.b".
//
//	updated, err := store.Update(ctx, "abc123", nil, map[string]any{"status": "approved"})
package dyndb
