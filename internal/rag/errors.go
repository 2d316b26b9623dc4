package rag

import "errors"

var (
	// ErrMissingCredential indica que a API key do provider escolhido
	// não está no ambiente.
	ErrMissingCredential = errors.New("credencial do provider não encontrada no ambiente")

	// ErrUnsupportedProvider indica um nome de provider desconhecido.
	ErrUnsupportedProvider = errors.New("provider não suportado")

	// ErrProviderMismatch indica que a coleção foi ingerida com um provider
	// diferente do configurado. Buscar num espaço vetorial alheio retorna
	// lixo silenciosamente, então isso vira erro.
	ErrProviderMismatch = errors.New("provider diferente do usado na ingestão da coleção")

	// ErrEmptyDocument indica que o arquivo de origem não rendeu texto algum.
	ErrEmptyDocument = errors.New("documento sem texto extraível")
)
