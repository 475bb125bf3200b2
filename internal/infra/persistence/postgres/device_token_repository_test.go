package postgres

import (
	"context"
	"testing"
	"time"

	"guardian/internal/domain/entity"
	domainerrors "guardian/internal/domain/errors"
	"guardian/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const upsertTokenSQL = `INSERT INTO "fcm_tokens" .* ON CONFLICT \("user_id","token"\) DO UPDATE SET .*RETURNING`

func TestDeviceTokenRepository_Upsert_New(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDeviceTokenRepository(db)

	createdAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	mock.ExpectQuery(upsertTokenSQL).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("tok-1", createdAt))

	token := &entity.DeviceToken{
		UserID:     "user-1",
		Token:      "fcm-abc",
		DeviceInfo: entity.DeviceInfo{Platform: "android", Model: "Pixel 8"},
	}
	require.NoError(t, repo.Upsert(context.Background(), token))

	assert.Equal(t, "tok-1", token.ID)
	assert.Equal(t, createdAt, token.CreatedAt)
	assert.False(t, token.LastUsedAt.IsZero())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeviceTokenRepository_Upsert_ExistingKeepsStoredID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDeviceTokenRepository(db)

	lastUsed := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(upsertTokenSQL).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("existing-id", lastUsed.Add(-time.Hour)))

	token := &entity.DeviceToken{
		ID:         "ignored-on-conflict",
		UserID:     "user-1",
		Token:      "fcm-abc",
		LastUsedAt: lastUsed,
	}
	require.NoError(t, repo.Upsert(context.Background(), token))

	assert.Equal(t, "existing-id", token.ID)
	assert.Equal(t, lastUsed, token.LastUsedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeviceTokenRepository_Upsert_Invalid(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDeviceTokenRepository(db)

	for _, token := range []*entity.DeviceToken{
		nil,
		{UserID: "", Token: "fcm"},
		{UserID: "user-1", Token: "  "},
	} {
		err := repo.Upsert(context.Background(), token)
		assert.ErrorIs(t, err, repository.ErrInvalidDeviceToken)
	}

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeviceTokenRepository_Upsert_DatabaseError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDeviceTokenRepository(db)

	mock.ExpectQuery(upsertTokenSQL).WillReturnError(errors.New("connection reset"))

	err := repo.Upsert(context.Background(), &entity.DeviceToken{UserID: "user-1", Token: "fcm"})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
}

func TestDeviceTokenRepository_FindByUserIDs(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDeviceTokenRepository(db)

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "user_id", "token", "device_info", "last_used_at", "created_at", "updated_at"}).
		AddRow("t1", "user-1", "fcm-1", []byte(`{"platform":"ios","model":"iPhone","manufacturer":"Apple","osVersion":"18.1"}`), now, now, now).
		AddRow("t2", "user-2", "fcm-2", []byte(`{"platform":"android"}`), now, now, now)

	mock.ExpectQuery(`SELECT \* FROM "fcm_tokens" WHERE user_id IN \(\$1,\$2\) ORDER BY last_used_at DESC`).
		WithArgs("user-1", "user-2").
		WillReturnRows(rows)

	tokens, err := repo.FindByUserIDs(context.Background(), []string{"user-1", "user-2"})
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	assert.Equal(t, "fcm-1", tokens[0].Token)
	assert.Equal(t, entity.DeviceInfo{Platform: "ios", Model: "iPhone", Manufacturer: "Apple", OSVersion: "18.1"}, tokens[0].DeviceInfo)
	assert.Equal(t, "android", tokens[1].DeviceInfo.Platform)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeviceTokenRepository_FindByUserIDs_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDeviceTokenRepository(db)

	tokens, err := repo.FindByUserIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, tokens)
	require.NoError(t, mock.ExpectationsWereMet())
}
