package meeting

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/meetinglog-app/meetinglog/internal/domain/entities"
	"github.com/meetinglog-app/meetinglog/internal/domain/repositories"
	usecaseErrors "github.com/meetinglog-app/meetinglog/internal/usecase/errors"
	"github.com/meetinglog-app/meetinglog/internal/usecase/resolver"
	"github.com/meetinglog-app/meetinglog/pkg/ai"
)

// MeetingService orchestrates the ingestion pipeline and the version ledger
type MeetingService struct {
	meetingRepo    repositories.MeetingRepository
	versionRepo    repositories.VersionRepository
	actionItemRepo repositories.ActionItemRepository
	templateRepo   repositories.TemplateRepository
	resolver       resolver.Service
	generator      ai.Generator
	logger         *zap.Logger
}

// NewMeetingService creates a new meeting service
func NewMeetingService(
	meetingRepo repositories.MeetingRepository,
	versionRepo repositories.VersionRepository,
	actionItemRepo repositories.ActionItemRepository,
	templateRepo repositories.TemplateRepository,
	resolverService resolver.Service,
	generator ai.Generator,
	logger *zap.Logger,
) *MeetingService {
	return &MeetingService{
		meetingRepo:    meetingRepo,
		versionRepo:    versionRepo,
		actionItemRepo: actionItemRepo,
		templateRepo:   templateRepo,
		resolver:       resolverService,
		generator:      generator,
		logger:         logger,
	}
}

// CreateMeeting runs the full ingestion pipeline. Summarization is fatal:
// nothing is persisted when it fails. Every step after the meeting row is
// written is best-effort and degrades to an empty result on failure.
func (s *MeetingService) CreateMeeting(ctx context.Context, input CreateMeetingInput) (*entities.Meeting, error) {
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Content) == "" || input.Date.IsZero() {
		return nil, usecaseErrors.ErrInvalidInput
	}

	// Resolve template content as generation context
	var templateContent string
	if input.TemplateID != nil {
		template, err := s.templateRepo.FindByID(ctx, *input.TemplateID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, usecaseErrors.ErrTemplateNotFound
			}
			return nil, fmt.Errorf("failed to load template: %w", err)
		}
		templateContent = template.TemplateContent
	}

	// Summarize. Fatal: no meeting row exists yet, so a failure here leaves
	// no partial state behind.
	summary, err := s.generator.Summarize(ctx, ai.SummarizeInput{
		Title:        input.Title,
		Date:         input.Date.Format("2006-01-02"),
		Participants: input.Participants,
		Content:      input.Content,
		Template:     templateContent,
	})
	if err != nil {
		return nil, usecaseErrors.NewGenerationError("summarize", err)
	}

	sections := ParseSections(summary)

	meeting := entities.NewMeeting(input.Title, input.Date, input.Content)
	meeting.StartTime = input.StartTime
	meeting.EndTime = input.EndTime
	meeting.Location = input.Location
	meeting.MeetingType = input.MeetingType
	meeting.TemplateID = input.TemplateID
	meeting.Summary = summary
	meeting.Overview = sections.Overview
	meeting.Discussion = sections.Discussion
	meeting.Decisions = sections.Decisions
	meeting.NextSteps = sections.NextSteps

	if err := s.meetingRepo.Create(ctx, meeting); err != nil {
		return nil, fmt.Errorf("failed to create meeting: %w", err)
	}

	// Enrichment from here on never fails the creation
	s.linkParticipants(ctx, meeting.ID, input.Participants)
	s.extractAndPersistActionItems(ctx, meeting.ID, input.Content)
	s.suggestAndLinkTags(ctx, meeting.ID, input.Content)

	hydrated, err := s.meetingRepo.FindByID(ctx, meeting.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload meeting: %w", err)
	}
	return hydrated, nil
}

// linkParticipants attaches the named participants, skipping names that
// fail to resolve so one bad name does not block the rest
func (s *MeetingService) linkParticipants(ctx context.Context, meetingID uuid.UUID, names []string) {
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		if _, err := s.resolver.LinkParticipant(ctx, meetingID, name); err != nil {
			s.logger.Warn("failed to link participant",
				zap.String("meeting_id", meetingID.String()),
				zap.String("name", name),
				zap.Error(err))
		}
	}
}

// extractAndPersistActionItems runs the structured extraction call and
// persists the results. Failures degrade to an empty list.
func (s *MeetingService) extractAndPersistActionItems(ctx context.Context, meetingID uuid.UUID, content string) {
	raw, err := s.generator.ExtractActionItems(ctx, content)
	if err != nil {
		s.logger.Warn("action item extraction failed",
			zap.String("meeting_id", meetingID.String()),
			zap.Error(err))
		return
	}

	extracted, err := ParseActionItems(raw)
	if err != nil {
		s.logger.Warn("action item output unparseable",
			zap.String("meeting_id", meetingID.String()),
			zap.Error(err))
		return
	}

	for _, e := range extracted {
		item := entities.NewActionItem(meetingID, e.Description)
		item.Priority = e.Priority

		if e.Assignee != nil {
			participant, err := s.resolver.ResolveParticipant(ctx, *e.Assignee)
			if err != nil {
				s.logger.Warn("failed to resolve assignee",
					zap.String("meeting_id", meetingID.String()),
					zap.String("assignee", *e.Assignee),
					zap.Error(err))
			} else {
				item.AssigneeID = &participant.ID
			}
		}

		if e.DueDate != nil {
			if due, err := time.Parse("2006-01-02", *e.DueDate); err == nil {
				d := datatypes.Date(due)
				item.DueDate = &d
			}
		}

		if err := s.actionItemRepo.Create(ctx, item); err != nil {
			s.logger.Warn("failed to persist action item",
				zap.String("meeting_id", meetingID.String()),
				zap.Error(err))
		}
	}
}

// suggestAndLinkTags runs the tag suggestion call and links the results.
// Failures degrade to no tags.
func (s *MeetingService) suggestAndLinkTags(ctx context.Context, meetingID uuid.UUID, content string) {
	existing, err := s.resolver.ListTagNames(ctx)
	if err != nil {
		s.logger.Warn("failed to list existing tags",
			zap.String("meeting_id", meetingID.String()),
			zap.Error(err))
		existing = nil
	}

	raw, err := s.generator.SuggestTags(ctx, content, existing)
	if err != nil {
		s.logger.Warn("tag suggestion failed",
			zap.String("meeting_id", meetingID.String()),
			zap.Error(err))
		return
	}

	suggested, err := ParseSuggestedTags(raw)
	if err != nil {
		s.logger.Warn("tag suggestion output unparseable",
			zap.String("meeting_id", meetingID.String()),
			zap.Error(err))
		return
	}

	for _, t := range suggested {
		if _, err := s.resolver.LinkTag(ctx, meetingID, t.Name, *t.Confidence, true); err != nil {
			s.logger.Warn("failed to link tag",
				zap.String("meeting_id", meetingID.String()),
				zap.String("tag", t.Name),
				zap.Error(err))
		}
	}
}

// GetMeeting retrieves a meeting with its associations
func (s *MeetingService) GetMeeting(ctx context.Context, id uuid.UUID) (*entities.Meeting, error) {
	meeting, err := s.meetingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecaseErrors.ErrMeetingNotFound
		}
		return nil, fmt.Errorf("failed to get meeting: %w", err)
	}
	return meeting, nil
}

// ListMeetings retrieves meetings matching the filters
func (s *MeetingService) ListMeetings(ctx context.Context, filters repositories.MeetingFilters) ([]*entities.Meeting, int64, error) {
	meetings, total, err := s.meetingRepo.List(ctx, filters)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list meetings: %w", err)
	}
	return meetings, total, nil
}

// UpdateMeeting snapshots the current state into the version ledger, then
// applies the update. The snapshot is written first so version N always
// holds the state that existed before the Nth edit.
func (s *MeetingService) UpdateMeeting(ctx context.Context, id uuid.UUID, input UpdateMeetingInput) (*entities.Meeting, error) {
	current, err := s.meetingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecaseErrors.ErrMeetingNotFound
		}
		return nil, fmt.Errorf("failed to get meeting: %w", err)
	}

	if input.Status != nil &&
		*input.Status != string(entities.MeetingStatusActive) &&
		*input.Status != string(entities.MeetingStatusArchived) {
		return nil, usecaseErrors.ErrInvalidInput
	}

	fields := map[string]interface{}{}
	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, usecaseErrors.ErrInvalidInput
		}
		fields["title"] = *input.Title
	}
	if input.Date != nil {
		fields["date"] = datatypes.Date(*input.Date)
	}
	if input.StartTime != nil {
		fields["start_time"] = *input.StartTime
	}
	if input.EndTime != nil {
		fields["end_time"] = *input.EndTime
	}
	if input.Location != nil {
		fields["location"] = *input.Location
	}
	if input.MeetingType != nil {
		fields["meeting_type"] = *input.MeetingType
	}
	if input.Status != nil {
		fields["status"] = *input.Status
	}
	if input.Summary != nil {
		// Sections are always recomputed together with the summary
		sections := ParseSections(*input.Summary)
		fields["summary"] = *input.Summary
		fields["overview"] = sections.Overview
		fields["discussion"] = sections.Discussion
		fields["decisions"] = sections.Decisions
		fields["next_steps"] = sections.NextSteps
	}
	if len(fields) == 0 {
		return current, nil
	}

	changeSummary := input.ChangeSummary
	if changeSummary == "" {
		changeSummary = "Updated"
	}

	version := entities.NewMeetingVersion(current, changeSummary)
	if err := s.versionRepo.Append(ctx, version); err != nil {
		return nil, fmt.Errorf("failed to record version: %w", err)
	}

	if err := s.meetingRepo.Update(ctx, id, fields); err != nil {
		return nil, fmt.Errorf("failed to update meeting: %w", err)
	}

	updated, err := s.meetingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload meeting: %w", err)
	}
	return updated, nil
}

// DeleteMeeting removes a meeting with its versions, links and action items
func (s *MeetingService) DeleteMeeting(ctx context.Context, id uuid.UUID) error {
	if err := s.meetingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return usecaseErrors.ErrMeetingNotFound
		}
		return fmt.Errorf("failed to delete meeting: %w", err)
	}
	return nil
}

// GetVersionHistory returns all versions of a meeting, newest first
func (s *MeetingService) GetVersionHistory(ctx context.Context, meetingID uuid.UUID) ([]*entities.MeetingVersion, error) {
	if _, err := s.meetingRepo.FindByID(ctx, meetingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecaseErrors.ErrMeetingNotFound
		}
		return nil, fmt.Errorf("failed to get meeting: %w", err)
	}

	versions, err := s.versionRepo.ListByMeeting(ctx, meetingID)
	if err != nil {
		return nil, fmt.Errorf("failed to list versions: %w", err)
	}
	return versions, nil
}

// RestoreVersion re-applies a snapshot's title, raw content, summary and
// sections as a normal update, producing a new version on top of the
// history. Participant, tag and action item links are left untouched.
func (s *MeetingService) RestoreVersion(ctx context.Context, meetingID uuid.UUID, versionNumber int) (*entities.Meeting, error) {
	current, err := s.meetingRepo.FindByID(ctx, meetingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecaseErrors.ErrMeetingNotFound
		}
		return nil, fmt.Errorf("failed to get meeting: %w", err)
	}

	snapshot, err := s.versionRepo.FindByNumber(ctx, meetingID, versionNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecaseErrors.ErrVersionNotFound
		}
		return nil, fmt.Errorf("failed to load version: %w", err)
	}

	version := entities.NewMeetingVersion(current, fmt.Sprintf("Restored from version %d", versionNumber))
	if err := s.versionRepo.Append(ctx, version); err != nil {
		return nil, fmt.Errorf("failed to record version: %w", err)
	}

	fields := map[string]interface{}{
		"title":       snapshot.Title,
		"raw_content": snapshot.RawContent,
		"summary":     snapshot.Summary,
		"overview":    snapshot.Overview,
		"discussion":  snapshot.Discussion,
		"decisions":   snapshot.Decisions,
		"next_steps":  snapshot.NextSteps,
	}
	if err := s.meetingRepo.Update(ctx, meetingID, fields); err != nil {
		return nil, fmt.Errorf("failed to restore meeting: %w", err)
	}

	restored, err := s.meetingRepo.FindByID(ctx, meetingID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload meeting: %w", err)
	}
	return restored, nil
}
