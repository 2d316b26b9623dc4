package loader

import (
	"fmt"
	"os"
	"strings"

	pdf "github.com/dslipak/pdf"
	"github.com/josinaldojr/pdf-rag-chat/internal/rag"
)

// LoadPDF extrai o texto página a página, com o número da página (1-based)
// como metadado de origem de cada chunk.
func LoadPDF(path string) ([]rag.PageDocument, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("arquivo %s não encontrado: %w", path, err)
	}

	r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar PDF %s: %w", path, err)
	}

	var docs []rag.PageDocument
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Página ilegível não derruba o documento inteiro.
			continue
		}

		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}

		docs = append(docs, rag.PageDocument{
			Content: text,
			Page:    i,
			Source:  path,
		})
	}

	if len(docs) == 0 {
		return nil, fmt.Errorf("%s: %w", path, rag.ErrEmptyDocument)
	}

	return docs, nil
}
