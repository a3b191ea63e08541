package resolver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/meetinglog-app/meetinglog/internal/domain/entities"
	"github.com/meetinglog-app/meetinglog/internal/domain/repositories"
	usecaseErrors "github.com/meetinglog-app/meetinglog/internal/usecase/errors"
)

const (
	tagNamesCacheKey = "tags:names"
	tagNamesCacheTTL = 60 * time.Second
)

// ResolverService resolves free-text participant and tag names into
// canonical entities
type ResolverService struct {
	participantRepo repositories.ParticipantRepository
	tagRepo         repositories.TagRepository
	cache           Cache
}

// NewResolverService creates a new resolver service. cache may be nil.
func NewResolverService(
	participantRepo repositories.ParticipantRepository,
	tagRepo repositories.TagRepository,
	cache Cache,
) *ResolverService {
	return &ResolverService{
		participantRepo: participantRepo,
		tagRepo:         tagRepo,
		cache:           cache,
	}
}

// ResolveParticipant finds or creates a participant by display name.
// Names are matched after trimming surrounding whitespace; repeated calls
// with the same name return the same entity.
func (s *ResolverService) ResolveParticipant(ctx context.Context, name string) (*entities.Participant, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, usecaseErrors.ErrInvalidInput
	}

	participant, err := s.participantRepo.FindOrCreate(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve participant %q: %w", name, err)
	}
	return participant, nil
}

// LinkParticipant resolves a participant and attaches it to a meeting.
// Linking is idempotent; re-linking an already attached participant is a
// no-op.
func (s *ResolverService) LinkParticipant(ctx context.Context, meetingID uuid.UUID, name string) (*entities.Participant, error) {
	participant, err := s.ResolveParticipant(ctx, name)
	if err != nil {
		return nil, err
	}

	if _, err := s.participantRepo.Link(ctx, meetingID, participant.ID); err != nil {
		return nil, fmt.Errorf("failed to link participant %q: %w", name, err)
	}
	return participant, nil
}

// ResolveTag finds or creates a tag by name. Newly created tags invalidate
// the cached name list.
func (s *ResolverService) ResolveTag(ctx context.Context, name string, aiSuggested bool) (*entities.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, usecaseErrors.ErrInvalidInput
	}

	tag, created, err := s.tagRepo.FindOrCreate(ctx, name, aiSuggested)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve tag %q: %w", name, err)
	}
	if created && s.cache != nil {
		// Best effort; a stale list expires on its own
		_ = s.cache.Del(ctx, tagNamesCacheKey)
	}
	return tag, nil
}

// LinkTag resolves a tag, attaches it to a meeting and bumps the usage
// counter. The counter is incremented only when the link is new, so
// re-ingesting the same meeting does not inflate it.
func (s *ResolverService) LinkTag(ctx context.Context, meetingID uuid.UUID, name string, confidence float64, aiSuggested bool) (*entities.Tag, error) {
	tag, err := s.ResolveTag(ctx, name, aiSuggested)
	if err != nil {
		return nil, err
	}

	linked, err := s.tagRepo.Link(ctx, meetingID, tag.ID, confidence)
	if err != nil {
		return nil, fmt.Errorf("failed to link tag %q: %w", name, err)
	}
	if linked {
		if err := s.tagRepo.IncrementUsage(ctx, tag.ID); err != nil {
			return nil, fmt.Errorf("failed to increment usage for tag %q: %w", name, err)
		}
		tag.UsageCount++
	}
	return tag, nil
}

// ListTagNames returns all known tag names, served from cache when warm
func (s *ResolverService) ListTagNames(ctx context.Context) ([]string, error) {
	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, tagNamesCacheKey); ok {
			var names []string
			if err := json.Unmarshal([]byte(cached), &names); err == nil {
				return names, nil
			}
		}
	}

	names, err := s.tagRepo.ListNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tag names: %w", err)
	}

	if s.cache != nil {
		if encoded, err := json.Marshal(names); err == nil {
			_ = s.cache.Set(ctx, tagNamesCacheKey, string(encoded), tagNamesCacheTTL)
		}
	}
	return names, nil
}
