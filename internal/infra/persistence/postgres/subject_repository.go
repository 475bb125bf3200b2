package postgres

import (
	"context"
	"strings"

	"guardian/internal/domain/repository"
	"guardian/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// subjectRepository implements the repository.SubjectRepository interface.
type subjectRepository struct {
	db *gorm.DB
}

// NewSubjectRepository is the constructor for subjectRepository.
func NewSubjectRepository(db *gorm.DB) repository.SubjectRepository {
	return &subjectRepository{db: db}
}

// FindSubjectName returns the full name of the monitored person.
func (repo *subjectRepository) FindSubjectName(ctx context.Context, subjectID string) (string, error) {
	if strings.TrimSpace(subjectID) == "" {
		return "", repository.ErrSubjectNotFound
	}

	var person model.ElderlyPersonModel
	if err := repo.db.WithContext(ctx).
		Select("full_name").
		Where("id = ?", subjectID).
		Take(&person).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", repository.ErrSubjectNotFound
		}

		return "", errors.Wrap(err, "failed to find subject name")
	}

	return person.FullName, nil
}

// FindCaregiverIDs returns the distinct caregivers assigned to the person.
func (repo *subjectRepository) FindCaregiverIDs(ctx context.Context, subjectID string) ([]string, error) {
	if strings.TrimSpace(subjectID) == "" {
		return []string{}, nil
	}

	ids := make([]string, 0)
	if err := repo.db.WithContext(ctx).
		Model(&model.CaregiverAssignmentModel{}).
		Distinct().
		Where("elderly_person_id = ?", subjectID).
		Pluck("caregiver_user_id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find caregivers")
	}

	return ids, nil
}
