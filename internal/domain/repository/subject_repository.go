package repository

import (
	"context"

	"github.com/pkg/errors"
)

// ErrSubjectNotFound is returned when the monitored person does not exist.
var ErrSubjectNotFound = errors.New("subject not found")

// SubjectRepository reads the monitored person records alerts refer to.
type SubjectRepository interface {
	// FindSubjectName returns the display name of the monitored person.
	FindSubjectName(ctx context.Context, subjectID string) (string, error)

	// FindCaregiverIDs returns the users assigned to care for the person.
	FindCaregiverIDs(ctx context.Context, subjectID string) ([]string, error)
}
