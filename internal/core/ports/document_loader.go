package ports

import "go.trai.ch/cadence/internal/core/domain"

// DocumentLoader defines the interface for loading declarative documents.
//
//go:generate go run go.uber.org/mock/mockgen -source=document_loader.go -destination=mocks/mock_document_loader.go -package=mocks
type DocumentLoader interface {
	// Load reads and validates the document at path.
	Load(path string) (*domain.Document, error)
}
