package loader

import (
	"fmt"
	"os"
	"strings"

	"github.com/josinaldojr/pdf-rag-chat/internal/rag"
	"golang.org/x/net/html"
)

// LoadHTML lê um arquivo .html/.htm e devolve só o texto visível,
// como um único "documento de uma página".
func LoadHTML(path string) ([]rag.PageDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("erro lendo %s: %w", path, err)
	}

	text := extractMainText(string(data))
	if text == "" {
		return nil, fmt.Errorf("%s: %w", path, rag.ErrEmptyDocument)
	}

	return []rag.PageDocument{{Content: text, Page: 1, Source: path}}, nil
}

// LoadText lê um arquivo de texto puro (.md/.txt).
func LoadText(path string) ([]rag.PageDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("erro lendo %s: %w", path, err)
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return nil, fmt.Errorf("%s: %w", path, rag.ErrEmptyDocument)
	}

	return []rag.PageDocument{{Content: text, Page: 1, Source: path}}, nil
}

// extractMainText varre a árvore HTML ignorando script/style/noscript e
// junta os nós de texto não vazios, um por linha.
func extractMainText(htmlStr string) string {
	doc, err := html.Parse(strings.NewReader(htmlStr))
	if err != nil {
		return ""
	}

	var b strings.Builder
	var walk func(*html.Node, bool)

	walk = func(n *html.Node, skip bool) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript":
				skip = true
			}
		}

		if n.Type == html.TextNode && !skip {
			t := strings.TrimSpace(n.Data)
			if t != "" {
				b.WriteString(t)
				b.WriteString("\n")
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c, skip)
		}
	}
	walk(doc, false)

	lines := strings.Split(b.String(), "\n")
	var filtered []string
	for _, l := range lines {
		l = strings.TrimSpace(l)
		if l != "" && len(l) > 1 {
			filtered = append(filtered, l)
		}
	}
	return strings.Join(filtered, "\n")
}
