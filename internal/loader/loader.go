// Package loader extrai texto de arquivos de origem (PDF, HTML, texto puro)
// em documentos página a página prontos para o split.
package loader

import (
	"fmt"
	"strings"

	"github.com/josinaldojr/pdf-rag-chat/internal/rag"
)

// LoadFile despacha pela extensão do arquivo.
func LoadFile(path string) ([]rag.PageDocument, error) {
	switch {
	case hasSuffix(path, ".pdf"):
		return LoadPDF(path)
	case hasSuffix(path, ".html"), hasSuffix(path, ".htm"):
		return LoadHTML(path)
	case hasSuffix(path, ".md"), hasSuffix(path, ".txt"):
		return LoadText(path)
	default:
		return nil, fmt.Errorf("formato não suportado: %s (use .pdf, .html, .md ou .txt)", path)
	}
}

func hasSuffix(path, ext string) bool {
	return strings.HasSuffix(strings.ToLower(path), ext)
}
