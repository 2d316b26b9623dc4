package main

import (
	"context"
	"flag"
	"log"
	"net/http"

	"github.com/josinaldojr/pdf-rag-chat/internal/config"
	"github.com/josinaldojr/pdf-rag-chat/internal/db"
	apphttp "github.com/josinaldojr/pdf-rag-chat/internal/http"
	"github.com/josinaldojr/pdf-rag-chat/internal/llm"
	"github.com/josinaldojr/pdf-rag-chat/internal/rag"
)

func main() {
	providerFlag := flag.String("provider", "openai", "provider de IA: openai ou google")
	flag.Parse()

	provider, err := rag.ParseProvider(*providerFlag)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Erro na configuração: %v", err)
	}

	client, err := llm.New(ctx, provider)
	if err != nil {
		log.Fatalf("❌ Erro ao inicializar provider: %v", err)
	}

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Erro ao conectar no banco: %v", err)
	}
	defer pool.Close()

	service := rag.NewService(rag.NewPgRepository(pool), provider, client, client)

	h := apphttp.NewHandler(service, cfg.Collection)
	router := apphttp.NewRouter(h)

	addr := ":" + cfg.Port
	log.Printf("API listening on %s", addr)
	log.Fatal(http.ListenAndServe(addr, router))
}
