package actionitem

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/meetinglog-app/meetinglog/internal/domain/entities"
	"github.com/meetinglog-app/meetinglog/internal/domain/repositories"
	usecaseErrors "github.com/meetinglog-app/meetinglog/internal/usecase/errors"
)

type fakeActionItemRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]*entities.ActionItem
}

func newFakeActionItemRepo() *fakeActionItemRepo {
	return &fakeActionItemRepo{items: map[uuid.UUID]*entities.ActionItem{}}
}

func (r *fakeActionItemRepo) Create(ctx context.Context, item *entities.ActionItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *item
	r.items[item.ID] = &copied
	return nil
}

func (r *fakeActionItemRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.ActionItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *item
	return &copied, nil
}

func (r *fakeActionItemRepo) List(ctx context.Context, filters repositories.ActionItemFilters) ([]*entities.ActionItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entities.ActionItem
	for _, item := range r.items {
		if filters.Status != "" && item.Status != filters.Status {
			continue
		}
		if filters.Priority != "" && item.Priority != filters.Priority {
			continue
		}
		if filters.OverdueOnly && !item.IsOverdue(time.Now()) {
			continue
		}
		copied := *item
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeActionItemRepo) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for key, value := range fields {
		switch key {
		case "description":
			item.Description = value.(string)
		case "priority":
			item.Priority = value.(string)
		case "status":
			item.Status = value.(string)
		case "completion_date":
			if value == nil {
				item.CompletionDate = nil
			} else {
				when := value.(time.Time)
				item.CompletionDate = &when
			}
		case "due_date":
			due := value.(datatypes.Date)
			item.DueDate = &due
		case "notes":
			notes := value.(string)
			item.Notes = &notes
		case "assignee_id":
			if value == nil {
				item.AssigneeID = nil
			} else {
				assigneeID := value.(uuid.UUID)
				item.AssigneeID = &assigneeID
			}
		}
	}
	return nil
}

func (r *fakeActionItemRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *fakeActionItemRepo) Summarize(ctx context.Context, today time.Time) (*repositories.ActionItemSummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	summary := &repositories.ActionItemSummary{}
	for _, item := range r.items {
		summary.Total++
		switch item.Status {
		case entities.ActionItemStatusPending:
			summary.Pending++
		case entities.ActionItemStatusInProgress:
			summary.InProgress++
		case entities.ActionItemStatusCompleted:
			summary.Completed++
		case entities.ActionItemStatusCancelled:
			summary.Cancelled++
		}
		if item.IsOverdue(today) {
			summary.Overdue++
		}
	}
	return summary, nil
}

type fakeMeetingRepo struct {
	mu       sync.Mutex
	meetings map[uuid.UUID]*entities.Meeting
}

func newFakeMeetingRepo() *fakeMeetingRepo {
	return &fakeMeetingRepo{meetings: map[uuid.UUID]*entities.Meeting{}}
}

func (r *fakeMeetingRepo) Create(ctx context.Context, m *entities.Meeting) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *m
	r.meetings[m.ID] = &copied
	return nil
}

func (r *fakeMeetingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.meetings[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *m
	return &copied, nil
}

func (r *fakeMeetingRepo) List(ctx context.Context, filters repositories.MeetingFilters) ([]*entities.Meeting, int64, error) {
	return nil, 0, nil
}

func (r *fakeMeetingRepo) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	return nil
}

func (r *fakeMeetingRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (r *fakeMeetingRepo) FindMostRecent(ctx context.Context) (*entities.Meeting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var latest *entities.Meeting
	for _, m := range r.meetings {
		if latest == nil || time.Time(m.Date).After(time.Time(latest.Date)) {
			latest = m
		}
	}
	if latest == nil {
		return nil, nil
	}
	copied := *latest
	return &copied, nil
}

func (r *fakeMeetingRepo) ListCorpus(ctx context.Context) ([]*entities.Meeting, error) {
	return nil, nil
}

// fakeResolver resolves every name to a stable participant
type fakeResolver struct {
	byName map[string]*entities.Participant
}

func newFakeResolver() *fakeResolver {
	return &fakeResolver{byName: map[string]*entities.Participant{}}
}

func (f *fakeResolver) ResolveParticipant(ctx context.Context, name string) (*entities.Participant, error) {
	if p, ok := f.byName[name]; ok {
		return p, nil
	}
	p := entities.NewParticipant(name)
	f.byName[name] = p
	return p, nil
}

func (f *fakeResolver) LinkParticipant(ctx context.Context, meetingID uuid.UUID, name string) (*entities.Participant, error) {
	return f.ResolveParticipant(ctx, name)
}

func (f *fakeResolver) ResolveTag(ctx context.Context, name string, aiSuggested bool) (*entities.Tag, error) {
	return entities.NewTag(name, aiSuggested), nil
}

func (f *fakeResolver) LinkTag(ctx context.Context, meetingID uuid.UUID, name string, confidence float64, aiSuggested bool) (*entities.Tag, error) {
	return entities.NewTag(name, aiSuggested), nil
}

func (f *fakeResolver) ListTagNames(ctx context.Context) ([]string, error) {
	return nil, nil
}

type itemTestEnv struct {
	itemRepo    *fakeActionItemRepo
	meetingRepo *fakeMeetingRepo
	service     *ActionItemService
}

func newItemTestEnv() *itemTestEnv {
	itemRepo := newFakeActionItemRepo()
	meetingRepo := newFakeMeetingRepo()
	service := NewActionItemService(itemRepo, meetingRepo, newFakeResolver(), zap.NewNop())
	return &itemTestEnv{itemRepo: itemRepo, meetingRepo: meetingRepo, service: service}
}

func seedMeeting(t *testing.T, repo *fakeMeetingRepo, title string, date time.Time) *entities.Meeting {
	t.Helper()
	m := entities.NewMeeting(title, date, "내용")
	require.NoError(t, repo.Create(context.Background(), m))
	return m
}

func TestCreateActionItemWithMeeting(t *testing.T) {
	env := newItemTestEnv()
	ctx := context.Background()
	m := seedMeeting(t, env.meetingRepo, "스프린트 회고", time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC))

	assignee := "김민수"
	created, err := env.service.CreateActionItem(ctx, CreateActionItemInput{
		MeetingID:   &m.ID,
		Description: "배포 체크리스트 작성",
		Assignee:    &assignee,
		Priority:    entities.ActionItemPriorityHigh,
	})
	require.NoError(t, err)

	assert.Equal(t, m.ID, created.MeetingID)
	assert.Equal(t, entities.ActionItemPriorityHigh, created.Priority)
	assert.Equal(t, entities.ActionItemStatusPending, created.Status)
	assert.NotNil(t, created.AssigneeID)
	assert.Nil(t, created.CompletionDate)
}

func TestCreateActionItemFallsBackToLatestMeeting(t *testing.T) {
	env := newItemTestEnv()
	ctx := context.Background()
	seedMeeting(t, env.meetingRepo, "오래된 미팅", time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC))
	latest := seedMeeting(t, env.meetingRepo, "최근 미팅", time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC))

	created, err := env.service.CreateActionItem(ctx, CreateActionItemInput{
		Description: "회의록 공유",
	})
	require.NoError(t, err)
	assert.Equal(t, latest.ID, created.MeetingID)
}

func TestCreateActionItemSynthesizesPlaceholderMeeting(t *testing.T) {
	env := newItemTestEnv()
	ctx := context.Background()

	created, err := env.service.CreateActionItem(ctx, CreateActionItemInput{
		Description: "고아 액션 아이템",
	})
	require.NoError(t, err)

	require.Len(t, env.meetingRepo.meetings, 1)
	placeholder := env.meetingRepo.meetings[created.MeetingID]
	require.NotNil(t, placeholder)
	assert.Equal(t, "General action items", placeholder.Title)
}

func TestCreateActionItemUnknownMeeting(t *testing.T) {
	env := newItemTestEnv()
	id := uuid.New()

	_, err := env.service.CreateActionItem(context.Background(), CreateActionItemInput{
		MeetingID:   &id,
		Description: "작업",
	})
	assert.ErrorIs(t, err, usecaseErrors.ErrMeetingNotFound)
}

func TestUpdateActionItemCompletionDate(t *testing.T) {
	env := newItemTestEnv()
	ctx := context.Background()
	m := seedMeeting(t, env.meetingRepo, "미팅", time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC))

	created, err := env.service.CreateActionItem(ctx, CreateActionItemInput{
		MeetingID:   &m.ID,
		Description: "작업",
	})
	require.NoError(t, err)

	// pending -> in_progress leaves the completion date unset
	inProgress := entities.ActionItemStatusInProgress
	updated, err := env.service.UpdateActionItem(ctx, created.ID, UpdateActionItemInput{Status: &inProgress})
	require.NoError(t, err)
	assert.Nil(t, updated.CompletionDate)

	// -> completed sets it
	completed := entities.ActionItemStatusCompleted
	updated, err = env.service.UpdateActionItem(ctx, created.ID, UpdateActionItemInput{Status: &completed})
	require.NoError(t, err)
	require.NotNil(t, updated.CompletionDate)
	firstCompletion := *updated.CompletionDate

	// Completed -> completed does not touch it
	updated, err = env.service.UpdateActionItem(ctx, created.ID, UpdateActionItemInput{Status: &completed})
	require.NoError(t, err)
	require.NotNil(t, updated.CompletionDate)
	assert.Equal(t, firstCompletion, *updated.CompletionDate)

	// Reopening clears it
	pending := entities.ActionItemStatusPending
	updated, err = env.service.UpdateActionItem(ctx, created.ID, UpdateActionItemInput{Status: &pending})
	require.NoError(t, err)
	assert.Nil(t, updated.CompletionDate)
}

func TestUpdateActionItemInvalidStatus(t *testing.T) {
	env := newItemTestEnv()
	ctx := context.Background()
	m := seedMeeting(t, env.meetingRepo, "미팅", time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC))

	created, err := env.service.CreateActionItem(ctx, CreateActionItemInput{
		MeetingID:   &m.ID,
		Description: "작업",
	})
	require.NoError(t, err)

	bogus := "done"
	_, err = env.service.UpdateActionItem(ctx, created.ID, UpdateActionItemInput{Status: &bogus})
	assert.ErrorIs(t, err, usecaseErrors.ErrInvalidStatus)
}

func TestGetSummaryCountsOverdue(t *testing.T) {
	env := newItemTestEnv()
	ctx := context.Background()
	m := seedMeeting(t, env.meetingRepo, "미팅", time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC))

	yesterday := time.Now().AddDate(0, 0, -1)
	tomorrow := time.Now().AddDate(0, 0, 1)

	_, err := env.service.CreateActionItem(ctx, CreateActionItemInput{
		MeetingID: &m.ID, Description: "기한 지남", DueDate: &yesterday,
	})
	require.NoError(t, err)

	_, err = env.service.CreateActionItem(ctx, CreateActionItemInput{
		MeetingID: &m.ID, Description: "기한 남음", DueDate: &tomorrow,
	})
	require.NoError(t, err)

	done, err := env.service.CreateActionItem(ctx, CreateActionItemInput{
		MeetingID: &m.ID, Description: "완료된 것", DueDate: &yesterday,
	})
	require.NoError(t, err)
	completed := entities.ActionItemStatusCompleted
	_, err = env.service.UpdateActionItem(ctx, done.ID, UpdateActionItemInput{Status: &completed})
	require.NoError(t, err)

	summary, err := env.service.GetSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), summary.Total)
	assert.Equal(t, int64(2), summary.Pending)
	assert.Equal(t, int64(1), summary.Completed)
	assert.Equal(t, int64(1), summary.Overdue)
}

func TestDeleteActionItemNotFound(t *testing.T) {
	env := newItemTestEnv()

	err := env.service.DeleteActionItem(context.Background(), uuid.New())
	assert.ErrorIs(t, err, usecaseErrors.ErrActionItemNotFound)
}
