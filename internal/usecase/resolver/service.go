package resolver

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/meetinglog-app/meetinglog/internal/domain/entities"
)

// Cache is the minimal string cache used for tag name lookups. A Redis
// implementation lives in infrastructure/cache; passing nil disables
// caching.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

// Service defines the interface for entity resolution
type Service interface {
	// ResolveParticipant finds or creates a participant by display name
	ResolveParticipant(ctx context.Context, name string) (*entities.Participant, error)

	// LinkParticipant resolves a participant and attaches it to a meeting
	LinkParticipant(ctx context.Context, meetingID uuid.UUID, name string) (*entities.Participant, error)

	// ResolveTag finds or creates a tag by name
	ResolveTag(ctx context.Context, name string, aiSuggested bool) (*entities.Tag, error)

	// LinkTag resolves a tag, attaches it to a meeting and maintains the
	// usage counter
	LinkTag(ctx context.Context, meetingID uuid.UUID, name string, confidence float64, aiSuggested bool) (*entities.Tag, error)

	// ListTagNames returns all known tag names, served from cache when warm
	ListTagNames(ctx context.Context) ([]string, error)
}

// Ensure ResolverService implements Service interface
var _ Service = (*ResolverService)(nil)
