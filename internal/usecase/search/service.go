package search

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/meetinglog-app/meetinglog/internal/domain/entities"
	"github.com/meetinglog-app/meetinglog/internal/domain/repositories"
	usecaseErrors "github.com/meetinglog-app/meetinglog/internal/usecase/errors"
	"github.com/meetinglog-app/meetinglog/pkg/ai"
)

// maxRelatedMeetings caps how many related meetings a search returns
const maxRelatedMeetings = 5

// maxCorpusMeetings bounds how much history is handed to the generator
const maxCorpusMeetings = 30

// Result is the answer to a natural-language question over the stored
// meetings, with the meetings most related to the question by keyword
// overlap
type Result struct {
	Answer          string
	RelatedMeetings []*entities.Meeting
}

// Service defines the interface for natural-language search over meetings
type Service interface {
	// Search answers a question against the stored meeting corpus
	Search(ctx context.Context, question string) (*Result, error)
}

// Ensure SearchService implements Service interface
var _ Service = (*SearchService)(nil)

// SearchService answers questions over the meeting corpus
type SearchService struct {
	meetingRepo repositories.MeetingRepository
	generator   ai.Generator
}

// NewSearchService creates a new search service
func NewSearchService(meetingRepo repositories.MeetingRepository, generator ai.Generator) *SearchService {
	return &SearchService{
		meetingRepo: meetingRepo,
		generator:   generator,
	}
}

// Search answers a question against the stored meeting corpus. The answer
// call is fatal to the search; related meetings are ranked locally by
// keyword overlap.
func (s *SearchService) Search(ctx context.Context, question string) (*Result, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, usecaseErrors.ErrInvalidInput
	}

	meetings, err := s.meetingRepo.ListCorpus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load meeting corpus: %w", err)
	}

	if len(meetings) == 0 {
		return &Result{Answer: "저장된 미팅로그가 없습니다.", RelatedMeetings: nil}, nil
	}

	answer, err := s.generator.AnswerQuestion(ctx, question, buildCorpus(meetings))
	if err != nil {
		return nil, usecaseErrors.NewGenerationError("answer", err)
	}

	return &Result{
		Answer:          answer,
		RelatedMeetings: rankByKeywords(meetings, question),
	}, nil
}

// buildCorpus renders the newest meetings into one prompt-sized document
func buildCorpus(meetings []*entities.Meeting) string {
	if len(meetings) > maxCorpusMeetings {
		meetings = meetings[:maxCorpusMeetings]
	}

	var sb strings.Builder
	for i, m := range meetings {
		date := time.Time(m.Date).Format("2006-01-02")
		fmt.Fprintf(&sb, "[미팅 %d] %s (%s)\n", i+1, m.Title, date)
		if m.Summary != "" {
			sb.WriteString(m.Summary)
		} else {
			sb.WriteString(m.RawContent)
		}
		sb.WriteString("\n\n")
	}
	return sb.String()
}

// rankByKeywords scores meetings by how many question keywords appear in
// their title, summary or raw content, and returns the top matches
func rankByKeywords(meetings []*entities.Meeting, question string) []*entities.Meeting {
	var keywords []string
	for _, word := range strings.Fields(strings.ToLower(question)) {
		if len([]rune(word)) > 1 {
			keywords = append(keywords, word)
		}
	}
	if len(keywords) == 0 {
		return nil
	}

	type scored struct {
		meeting *entities.Meeting
		score   int
	}
	var hits []scored
	for _, m := range meetings {
		haystack := strings.ToLower(m.Title + " " + m.Summary + " " + m.RawContent)
		score := 0
		for _, kw := range keywords {
			score += strings.Count(haystack, kw)
		}
		if score > 0 {
			hits = append(hits, scored{meeting: m, score: score})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].score > hits[j].score
	})

	if len(hits) > maxRelatedMeetings {
		hits = hits[:maxRelatedMeetings]
	}
	related := make([]*entities.Meeting, len(hits))
	for i, h := range hits {
		related[i] = h.meeting
	}
	return related
}
