package models

// Record é um item da tabela de aplicações. A única chave obrigatória é "id";
// os demais atributos são livres e pertencem à tabela, não a este serviço.
type Record = map[string]any

// KeyField é o nome do atributo de chave da tabela.
const KeyField = "id"
