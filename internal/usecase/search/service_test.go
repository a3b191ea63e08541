package search

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meetinglog-app/meetinglog/internal/domain/entities"
	"github.com/meetinglog-app/meetinglog/internal/domain/repositories"
	usecaseErrors "github.com/meetinglog-app/meetinglog/internal/usecase/errors"
	"github.com/meetinglog-app/meetinglog/pkg/ai"
)

type corpusRepo struct {
	meetings []*entities.Meeting
}

func (r *corpusRepo) Create(ctx context.Context, m *entities.Meeting) error { return nil }

func (r *corpusRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error) {
	return nil, nil
}

func (r *corpusRepo) List(ctx context.Context, filters repositories.MeetingFilters) ([]*entities.Meeting, int64, error) {
	return nil, 0, nil
}

func (r *corpusRepo) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	return nil
}

func (r *corpusRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (r *corpusRepo) FindMostRecent(ctx context.Context) (*entities.Meeting, error) {
	return nil, nil
}

func (r *corpusRepo) ListCorpus(ctx context.Context) ([]*entities.Meeting, error) {
	return r.meetings, nil
}

type answerGenerator struct {
	answer    string
	err       error
	gotCorpus string
}

func (g *answerGenerator) Summarize(ctx context.Context, in ai.SummarizeInput) (string, error) {
	return "", nil
}

func (g *answerGenerator) ExtractActionItems(ctx context.Context, content string) (string, error) {
	return "", nil
}

func (g *answerGenerator) SuggestTags(ctx context.Context, content string, existingNames []string) (string, error) {
	return "", nil
}

func (g *answerGenerator) AnswerQuestion(ctx context.Context, question, corpus string) (string, error) {
	g.gotCorpus = corpus
	if g.err != nil {
		return "", g.err
	}
	return g.answer, nil
}

func seedCorpus() []*entities.Meeting {
	roadmap := entities.NewMeeting("로드맵 미팅", time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC), "로드맵 로드맵 일정")
	roadmap.Summary = "로드맵을 확정했다"
	retro := entities.NewMeeting("회고", time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC), "스프린트 회고")
	retro.Summary = "프로세스 개선 논의"
	return []*entities.Meeting{roadmap, retro}
}

func TestSearchAnswersAndRanks(t *testing.T) {
	gen := &answerGenerator{answer: "로드맵은 8월 20일에 확정되었습니다."}
	service := NewSearchService(&corpusRepo{meetings: seedCorpus()}, gen)

	result, err := service.Search(context.Background(), "로드맵 언제 확정됐어?")
	require.NoError(t, err)

	assert.Equal(t, "로드맵은 8월 20일에 확정되었습니다.", result.Answer)
	assert.Contains(t, gen.gotCorpus, "로드맵 미팅")
	assert.Contains(t, gen.gotCorpus, "2026-08-20")

	// Only the roadmap meeting mentions the keyword
	require.Len(t, result.RelatedMeetings, 1)
	assert.Equal(t, "로드맵 미팅", result.RelatedMeetings[0].Title)
}

func TestSearchEmptyCorpus(t *testing.T) {
	gen := &answerGenerator{answer: "무시됨"}
	service := NewSearchService(&corpusRepo{}, gen)

	result, err := service.Search(context.Background(), "아무거나")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Answer)
	assert.Empty(t, result.RelatedMeetings)
	// The generator is never called without a corpus
	assert.Empty(t, gen.gotCorpus)
}

func TestSearchGenerationFailure(t *testing.T) {
	gen := &answerGenerator{err: errors.New("upstream down")}
	service := NewSearchService(&corpusRepo{meetings: seedCorpus()}, gen)

	_, err := service.Search(context.Background(), "질문")

	var genErr *usecaseErrors.GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, "answer", genErr.Step)
}

func TestSearchBlankQuestion(t *testing.T) {
	service := NewSearchService(&corpusRepo{}, &answerGenerator{})

	_, err := service.Search(context.Background(), "   ")
	assert.ErrorIs(t, err, usecaseErrors.ErrInvalidInput)
}

func TestRankByKeywordsCapsResults(t *testing.T) {
	var meetings []*entities.Meeting
	for i := 0; i < 8; i++ {
		meetings = append(meetings, entities.NewMeeting("배포 회의", time.Now(), "배포 준비"))
	}

	related := rankByKeywords(meetings, "배포 현황")
	assert.Len(t, related, maxRelatedMeetings)
}
