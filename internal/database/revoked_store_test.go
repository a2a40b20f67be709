package database

import (
	"context"
	"testing"
	"time"

	"theark/internal/models"
	"theark/internal/testutil"
)

func TestRevokedTokenStore(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	store := NewRevokedTokenStore(db, func() time.Time { return now })
	ctx := context.Background()

	revoked, err := store.IsRevoked(ctx, "jti-1")
	testutil.AssertNoError(t, err)
	if revoked {
		t.Fatal("unknown token should not be revoked")
	}

	testutil.AssertNoError(t, store.Revoke(ctx, "jti-1", now.Add(time.Hour)))
	revoked, err = store.IsRevoked(ctx, "jti-1")
	testutil.AssertNoError(t, err)
	if !revoked {
		t.Fatal("token should be revoked")
	}

	// Revoking twice is not an error.
	testutil.AssertNoError(t, store.Revoke(ctx, "jti-1", now.Add(time.Hour)))

	now = now.Add(2 * time.Hour)
	revoked, err = store.IsRevoked(ctx, "jti-1")
	testutil.AssertNoError(t, err)
	if revoked {
		t.Error("revocation should lapse once the token has expired")
	}
}

func TestRevokedTokenStore_PrunesExpired(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	testutil.CreateTestRevokedToken(t, db, "old", now.Add(-time.Minute))

	store := NewRevokedTokenStore(db, func() time.Time { return now })
	testutil.AssertNoError(t, store.Revoke(context.Background(), "new", now.Add(time.Hour)))

	var ids []string
	db.Model(&models.RevokedToken{}).Pluck("token_id", &ids)
	if len(ids) != 1 || ids[0] != "new" {
		t.Errorf("expected only the new revocation to remain, got %v", ids)
	}
}
