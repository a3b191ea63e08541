package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/meetinglog-app/meetinglog/internal/domain/entities"
	"github.com/meetinglog-app/meetinglog/internal/domain/repositories"
)

// participantRepository implements the ParticipantRepository interface
type participantRepository struct {
	db *gorm.DB
}

// NewParticipantRepository creates a new participant repository
func NewParticipantRepository(db *gorm.DB) repositories.ParticipantRepository {
	return &participantRepository{db: db}
}

// FindOrCreate resolves a participant by exact name. The insert uses
// ON CONFLICT (name) DO NOTHING so concurrent resolutions of the same new
// name cannot create duplicate rows; when the insert is a no-op the winning
// row is fetched.
func (r *participantRepository) FindOrCreate(ctx context.Context, name string) (*entities.Participant, error) {
	participant := entities.NewParticipant(name)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).
		Create(participant)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		var existing entities.Participant
		if err := r.db.WithContext(ctx).Where("name = ?", name).First(&existing).Error; err != nil {
			return nil, err
		}
		return &existing, nil
	}
	return participant, nil
}

// Link associates a participant with a meeting; duplicate links are no-ops
func (r *participantRepository) Link(ctx context.Context, meetingID, participantID uuid.UUID) (bool, error) {
	link := &entities.MeetingParticipant{
		MeetingID:     meetingID,
		ParticipantID: participantID,
	}
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(link)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// FindByID retrieves a participant by ID
func (r *participantRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Participant, error) {
	var participant entities.Participant
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&participant).Error
	if err != nil {
		return nil, err
	}
	return &participant, nil
}

// List returns all participants ordered by name
func (r *participantRepository) List(ctx context.Context) ([]*entities.Participant, error) {
	var participants []*entities.Participant
	err := r.db.WithContext(ctx).Order("name ASC").Find(&participants).Error
	return participants, err
}
