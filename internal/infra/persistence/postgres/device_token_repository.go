// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"strings"
	"time"

	"guardian/internal/domain/entity"
	domainerrors "guardian/internal/domain/errors"
	"guardian/internal/domain/repository"
	"guardian/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// deviceTokenRepository implements the repository.DeviceTokenRepository interface.
type deviceTokenRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewDeviceTokenRepository is the constructor for deviceTokenRepository.
func NewDeviceTokenRepository(db *gorm.DB) repository.DeviceTokenRepository {
	return &deviceTokenRepository{
		db:  db,
		now: time.Now,
	}
}

// Upsert inserts the token, or refreshes device info and last_used_at when (user_id, token) exists.
func (repo *deviceTokenRepository) Upsert(ctx context.Context, token *entity.DeviceToken) error {
	if token == nil || strings.TrimSpace(token.UserID) == "" || strings.TrimSpace(token.Token) == "" {
		return repository.ErrInvalidDeviceToken
	}

	tokenM := fromDeviceTokenDomain(token)
	if tokenM.ID == "" {
		tokenM.ID = uuid.NewString()
	}
	if tokenM.LastUsedAt.IsZero() {
		tokenM.LastUsedAt = repo.now()
	}

	err := repo.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns:   []clause.Column{{Name: "user_id"}, {Name: "token"}},
				DoUpdates: clause.AssignmentColumns([]string{"device_info", "last_used_at", "updated_at"}),
			},
			clause.Returning{Columns: []clause.Column{{Name: "id"}, {Name: "created_at"}}},
		).
		Create(tokenM).Error
	if err != nil {
		if isNotNullConstraintViolation(err) {
			return repository.ErrInvalidDeviceToken
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert device token")
	}

	// The row id and creation time are the stored ones, even on conflict.
	token.ID = tokenM.ID
	token.LastUsedAt = tokenM.LastUsedAt
	token.CreatedAt = tokenM.CreatedAt
	token.UpdatedAt = tokenM.UpdatedAt

	return nil
}

// FindByUserIDs retrieves every token registered by the given users, most recently used first.
func (repo *deviceTokenRepository) FindByUserIDs(ctx context.Context, userIDs []string) ([]*entity.DeviceToken, error) {
	if len(userIDs) == 0 {
		return []*entity.DeviceToken{}, nil
	}

	var tokenModels []*model.DeviceTokenModel
	if err := repo.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Order("last_used_at DESC").
		Find(&tokenModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find device tokens by users")
	}

	tokens := make([]*entity.DeviceToken, 0, len(tokenModels))
	for _, tokenM := range tokenModels {
		tokens = append(tokens, toDeviceTokenDomain(tokenM))
	}

	return tokens, nil
}

// --- Mapper Functions ---

func toDeviceTokenDomain(data *model.DeviceTokenModel) *entity.DeviceToken {
	if data == nil {
		return nil
	}

	info := data.DeviceInfo.Data()

	return &entity.DeviceToken{
		ID:     data.ID,
		UserID: data.UserID,
		Token:  data.Token,
		DeviceInfo: entity.DeviceInfo{
			Platform:     info.Platform,
			Model:        info.Model,
			Manufacturer: info.Manufacturer,
			OSVersion:    info.OSVersion,
		},
		LastUsedAt: data.LastUsedAt,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromDeviceTokenDomain(data *entity.DeviceToken) *model.DeviceTokenModel {
	if data == nil {
		return nil
	}

	return &model.DeviceTokenModel{
		ID:     data.ID,
		UserID: data.UserID,
		Token:  data.Token,
		DeviceInfo: datatypes.NewJSONType(model.DeviceInfoJSON{
			Platform:     data.DeviceInfo.Platform,
			Model:        data.DeviceInfo.Model,
			Manufacturer: data.DeviceInfo.Manufacturer,
			OSVersion:    data.DeviceInfo.OSVersion,
		}),
		LastUsedAt: data.LastUsedAt,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
