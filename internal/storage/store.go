package storage

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pgngrid/internal/pgn"
)

// Store wraps a gorm DB instance and provides helper methods for persisting documents.
type Store struct {
	db *gorm.DB
}

// NewStore creates a new store helper from a gorm DB.
func NewStore(db *gorm.DB) *Store {
	if db == nil {
		return nil
	}
	return &Store{db: db}
}

// DB exposes the underlying gorm DB instance.
func (s *Store) DB() *gorm.DB {
	if s == nil {
		return nil
	}
	return s.db
}

// ErrNotFound is returned when a record is not found.
var ErrNotFound = gorm.ErrRecordNotFound

// ErrDisabled is returned when no database is configured.
var ErrDisabled = errors.New("storage disabled")

// SaveDocument stores the accepted games of one ingestion. A nil store keeps
// nothing and returns uuid.Nil.
func (s *Store) SaveDocument(ctx context.Context, source string, c *pgn.Collection) (uuid.UUID, error) {
	if s == nil || c == nil {
		return uuid.Nil, nil
	}
	doc := Document{
		ID:        uuid.New(),
		Source:    source,
		GameCount: len(c.Games),
		Skipped:   len(c.Skipped),
		Games:     toRows(c.Games),
	}
	if len(c.Games) > 0 {
		doc.Title = c.Games[0].Title(0)
	}
	if err := s.db.WithContext(ctx).Create(&doc).Error; err != nil {
		return uuid.Nil, err
	}
	return doc.ID, nil
}

// LoadDocument returns the games of a stored document in their original order.
func (s *Store) LoadDocument(ctx context.Context, id uuid.UUID) ([]pgn.GameRecord, error) {
	if s == nil {
		return nil, ErrDisabled
	}
	var rows []GameRecord
	if err := s.db.WithContext(ctx).
		Where("document_id = ?", id).
		Order("ordinal").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return fromRows(rows), nil
}

// RecentDocuments lists the newest documents without their games.
func (s *Store) RecentDocuments(ctx context.Context, limit int) ([]Document, error) {
	if s == nil {
		return nil, nil
	}
	var docs []Document
	err := s.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&docs).Error
	return docs, err
}

// DeleteDocument removes a document and its games.
func (s *Store) DeleteDocument(ctx context.Context, id uuid.UUID) error {
	if s == nil {
		return ErrDisabled
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("document_id = ?", id).Delete(&GameRecord{}).Error; err != nil {
			return err
		}
		return tx.Delete(&Document{}, "id = ?", id).Error
	})
}

func toRows(games []pgn.GameRecord) []GameRecord {
	rows := make([]GameRecord, 0, len(games))
	for i, g := range games {
		rows = append(rows, GameRecord{
			Ordinal: i,
			Event:   g.Title(i),
			PGN:     g.PGN,
			Headers: g.Header,
		})
	}
	return rows
}

func fromRows(rows []GameRecord) []pgn.GameRecord {
	games := make([]pgn.GameRecord, 0, len(rows))
	for _, r := range rows {
		header := r.Headers
		if header == nil {
			header = pgn.ParseHeaders(r.PGN)
		}
		games = append(games, pgn.GameRecord{PGN: r.PGN, Header: header})
	}
	return games
}
