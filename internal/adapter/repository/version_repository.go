package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/meetinglog-app/meetinglog/internal/domain/entities"
	"github.com/meetinglog-app/meetinglog/internal/domain/repositories"
)

// appendRetries bounds the retry loop for concurrent version appends.
const appendRetries = 3

// versionRepository implements the VersionRepository interface
type versionRepository struct {
	db *gorm.DB
}

// NewVersionRepository creates a new version repository
func NewVersionRepository(db *gorm.DB) repositories.VersionRepository {
	return &versionRepository{db: db}
}

// Append inserts a version snapshot with the next version number. The
// max+1 read and the insert run in one transaction; if a concurrent append
// wins the race the unique (meeting_id, version_number) index rejects the
// insert and the whole computation is retried.
func (r *versionRepository) Append(ctx context.Context, version *entities.MeetingVersion) error {
	var err error
	for attempt := 0; attempt < appendRetries; attempt++ {
		err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var next int
			if scanErr := tx.Model(&entities.MeetingVersion{}).
				Where("meeting_id = ?", version.MeetingID).
				Select("COALESCE(MAX(version_number), 0) + 1").
				Scan(&next).Error; scanErr != nil {
				return scanErr
			}
			version.VersionNumber = next
			return tx.Create(version).Error
		})
		if err == nil || !errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
	}
	return err
}

// ListByMeeting returns all versions for a meeting, newest first
func (r *versionRepository) ListByMeeting(ctx context.Context, meetingID uuid.UUID) ([]*entities.MeetingVersion, error) {
	var versions []*entities.MeetingVersion
	err := r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Order("version_number DESC").
		Find(&versions).Error
	return versions, err
}

// FindByNumber retrieves one version of a meeting
func (r *versionRepository) FindByNumber(ctx context.Context, meetingID uuid.UUID, versionNumber int) (*entities.MeetingVersion, error) {
	var version entities.MeetingVersion
	err := r.db.WithContext(ctx).
		Where("meeting_id = ? AND version_number = ?", meetingID, versionNumber).
		First(&version).Error
	if err != nil {
		return nil, err
	}
	return &version, nil
}
