package database

import (
	"context"
	"fmt"
	"time"

	"theark/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RevokedTokenStore keeps session revocations in the database so they
// survive restarts. It satisfies session.Denylist.
type RevokedTokenStore struct {
	db  *gorm.DB
	now func() time.Time
}

// NewRevokedTokenStore creates a RevokedTokenStore on db.
func NewRevokedTokenStore(db *gorm.DB, now func() time.Time) *RevokedTokenStore {
	if now == nil {
		now = time.Now
	}
	return &RevokedTokenStore{db: db, now: now}
}

// Revoke records tokenID until the given time and prunes rows that have
// already expired.
func (s *RevokedTokenStore) Revoke(ctx context.Context, tokenID string, until time.Time) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("expires_at <= ?", s.now().UTC()).Delete(&models.RevokedToken{}).Error; err != nil {
			return fmt.Errorf("prune revoked tokens: %w", err)
		}

		row := models.RevokedToken{TokenID: tokenID, ExpiresAt: until.UTC()}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
			return fmt.Errorf("revoke token: %w", err)
		}
		return nil
	})
}

// IsRevoked reports whether tokenID is currently denied.
func (s *RevokedTokenStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.RevokedToken{}).
		Where("token_id = ? AND expires_at > ?", tokenID, s.now().UTC()).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("lookup revoked token: %w", err)
	}
	return count > 0, nil
}
