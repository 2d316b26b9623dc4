package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"

	wl "github.com/abadojack/whatlanggo"
	"github.com/josinaldojr/pdf-rag-chat/internal/config"
	"github.com/josinaldojr/pdf-rag-chat/internal/db"
	"github.com/josinaldojr/pdf-rag-chat/internal/llm"
	"github.com/josinaldojr/pdf-rag-chat/internal/rag"
)

var exitKeywords = map[string]bool{
	"sair": true,
	"exit": true,
	"quit": true,
}

func main() {
	providerFlag := flag.String("provider", "openai", "provider de IA: openai ou google")
	flag.Parse()

	provider, err := rag.ParseProvider(*providerFlag)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Erro ao inicializar: %v", err)
	}

	ctx := context.Background()

	// Tudo que pode falhar na inicialização falha aqui, antes do loop.
	client, err := llm.New(ctx, provider)
	if err != nil {
		log.Fatalf("❌ Erro ao inicializar: %v", err)
	}

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Erro ao inicializar: %v", err)
	}
	defer pool.Close()

	service := rag.NewService(rag.NewPgRepository(pool), provider, client, client)

	if err := service.CheckCollection(ctx, cfg.Collection); err != nil {
		log.Fatalf("❌ Erro ao inicializar: %v", err)
	}

	fmt.Println("🤖 Chat de Busca Semântica")
	fmt.Println(strings.Repeat("=", 50))
	fmt.Println("Digite 'sair' para encerrar")
	fmt.Println()

	// SIGINT encerra o loop de forma graciosa.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	go func() {
		<-sig
		fmt.Println("\n\n👋 Encerrando chat...")
		pool.Close()
		os.Exit(0)
	}()

	runLoop(ctx, service, cfg.Collection)
}

func runLoop(ctx context.Context, service *rag.Service, collection string) {
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("Faça sua pergunta: ")
		if !scanner.Scan() {
			fmt.Println("\n👋 Encerrando chat...")
			return
		}

		query := strings.TrimSpace(scanner.Text())

		if exitKeywords[strings.ToLower(query)] {
			fmt.Println("\n👋 Encerrando chat...")
			return
		}

		if query == "" {
			fmt.Println("⚠️  Por favor, digite uma pergunta válida.")
			fmt.Println()
			continue
		}

		// O prompt de grounding e a frase de recusa são em português.
		if info := wl.Detect(query); info.IsReliable() && info.Lang != wl.Por {
			fmt.Printf("ℹ️  Pergunta detectada em %s; o assistente responde em português.\n", wl.LangToString(info.Lang))
		}

		fmt.Println("\n🔍 Buscando informações...")
		prompt, err := service.SearchPrompt(ctx, collection, query)
		if err != nil {
			fmt.Printf("❌ Erro ao buscar informações: %v\n\n", err)
			continue
		}
		if prompt == "" {
			// A causa já foi logada pelo service.
			fmt.Println("❌ Erro ao buscar informações.")
			fmt.Println()
			continue
		}

		fmt.Println("💭 Gerando resposta...")
		fmt.Println()
		answer, err := service.Generate(ctx, prompt)
		if err != nil {
			fmt.Printf("❌ Erro ao gerar resposta: %v\n\n", err)
			continue
		}

		fmt.Println("PERGUNTA:", query)
		fmt.Println("RESPOSTA:", answer)
		fmt.Println("\n" + strings.Repeat("-", 50) + "\n")
	}
}
