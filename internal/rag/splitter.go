package rag

import (
	"strings"
	"unicode/utf8"
)

// Parâmetros fixos do split: janela deslizante de 1000 caracteres
// com 150 de sobreposição entre chunks vizinhos.
const (
	ChunkSize    = 1000
	ChunkOverlap = 150
)

// SplitText divide o texto em chunks de no máximo ChunkSize caracteres,
// repetindo os últimos ChunkOverlap caracteres de cada chunk no início do
// seguinte. Conta em runas para nunca cortar um caractere multi-byte no
// meio. Pode cortar no meio de palavra; a ordem é preservada.
func SplitText(text string) []string {
	text = sanitizeUTF8(text)
	if text == "" {
		return nil
	}

	runes := []rune(text)
	if len(runes) <= ChunkSize {
		return []string{text}
	}

	step := ChunkSize - ChunkOverlap
	var chunks []string
	for start := 0; start < len(runes); start += step {
		end := start + ChunkSize
		if end >= len(runes) {
			chunks = append(chunks, string(runes[start:]))
			break
		}
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks
}

// SplitDocuments aplica SplitText página a página, carregando a origem
// de cada página para os chunks resultantes.
func SplitDocuments(docs []PageDocument) []DocumentChunk {
	var chunks []DocumentChunk
	for _, doc := range docs {
		for _, piece := range SplitText(doc.Content) {
			chunks = append(chunks, DocumentChunk{
				Content: piece,
				Page:    doc.Page,
				Source:  doc.Source,
			})
		}
	}
	return chunks
}

// sanitizeUTF8 remove bytes inválidos para UTF-8 (evita erro 22021 no Postgres).
func sanitizeUTF8(s string) string {
	if s == "" || utf8.ValidString(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		if r == utf8.RuneError && size == 1 {
			// byte inválido: descarta
			s = s[1:]
			continue
		}
		b.WriteRune(r)
		s = s[size:]
	}
	return b.String()
}
