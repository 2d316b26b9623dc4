package main

import (
	"context"
	"flag"
	"log"

	"github.com/josinaldojr/pdf-rag-chat/internal/config"
	"github.com/josinaldojr/pdf-rag-chat/internal/db"
	"github.com/josinaldojr/pdf-rag-chat/internal/llm"
	"github.com/josinaldojr/pdf-rag-chat/internal/loader"
	"github.com/josinaldojr/pdf-rag-chat/internal/rag"
)

func main() {
	providerFlag := flag.String("provider", "openai", "provider de IA: openai ou google")
	fileFlag := flag.String("file", "", "arquivo de origem (default: PDF_PATH do ambiente)")
	flag.Parse()

	provider, err := rag.ParseProvider(*providerFlag)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Erro na configuração: %v", err)
	}

	path := *fileFlag
	if path == "" {
		path = cfg.PDFPath
	}

	ctx := context.Background()

	client, err := llm.New(ctx, provider)
	if err != nil {
		log.Fatalf("❌ Erro ao inicializar provider: %v", err)
	}

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Erro ao conectar no banco: %v", err)
	}
	defer pool.Close()

	log.Printf("📄 Carregando %s...", path)
	docs, err := loader.LoadFile(path)
	if err != nil {
		log.Fatalf("❌ Erro ao carregar documento: %v", err)
	}
	log.Printf("✅ Documento carregado! %d páginas encontradas.", len(docs))

	service := rag.NewService(rag.NewPgRepository(pool), provider, client, client)

	count, err := service.Ingest(ctx, cfg.Collection, docs)
	if err != nil {
		log.Fatalf("❌ Erro na ingestão: %v", err)
	}

	log.Printf("✅ %d chunks armazenados na coleção %q.", count, cfg.Collection)
	log.Println("🎉 Ingestão concluída com sucesso!")
}
