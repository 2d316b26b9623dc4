package rag

import "strings"

// PromptTemplate é o prompt de grounding: a resposta deve sair somente do
// contexto recuperado, com recusa fixa quando a informação não está lá.
const PromptTemplate = `
CONTEXTO:
{context}

REGRAS:
- Responda somente com base no CONTEXTO.
- Se a informação não estiver explicitamente no CONTEXTO, responda:
  "Não tenho informações necessárias para responder sua pergunta."
- Nunca invente ou use conhecimento externo.
- Nunca produza opiniões ou interpretações além do que está escrito.

EXEMPLOS DE PERGUNTAS FORA DO CONTEXTO:
Pergunta: "Qual é a capital da França?"
Resposta: "Não tenho informações necessárias para responder sua pergunta."

Pergunta: "Quantos clientes temos em 2024?"
Resposta: "Não tenho informações necessárias para responder sua pergunta."

Pergunta: "Você acha isso bom ou ruim?"
Resposta: "Não tenho informações necessárias para responder sua pergunta."

PERGUNTA DO USUÁRIO:
{query}

RESPONDA A "PERGUNTA DO USUÁRIO"
`

// BuildPrompt junta os chunks com linha em branco e substitui contexto e
// pergunta no template.
func BuildPrompt(contexts []string, question string) string {
	context := strings.Join(contexts, "\n\n")
	prompt := strings.ReplaceAll(PromptTemplate, "{context}", context)
	return strings.ReplaceAll(prompt, "{query}", question)
}
