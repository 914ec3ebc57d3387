package storage

import (
	"time"

	"github.com/google/uuid"
)

// Document is one pasted or uploaded PGN text that loaded at least one game.
type Document struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Source    string
	Title     string
	GameCount int
	Skipped   int
	CreatedAt time.Time
	Games     []GameRecord `gorm:"constraint:OnDelete:CASCADE;"`
}

// GameRecord stores one accepted game of a document.
type GameRecord struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	DocumentID uuid.UUID `gorm:"type:uuid;index;uniqueIndex:idx_document_ordinal"`
	Ordinal    int       `gorm:"uniqueIndex:idx_document_ordinal"`
	Event      string
	PGN        string
	Headers    map[string]string `gorm:"serializer:json"`
	CreatedAt  time.Time
}
