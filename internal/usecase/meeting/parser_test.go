package meeting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meetinglog-app/meetinglog/internal/domain/entities"
)

func TestParseActionItemsEnvelope(t *testing.T) {
	raw := `{"actionItems": [
		{"description": "일정 공유", "assignee": "김민수", "priority": "high", "dueDate": "2026-09-01"},
		{"description": "문서 정리", "assignee": null, "priority": "low", "dueDate": null}
	]}`

	items, err := ParseActionItems(raw)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "일정 공유", items[0].Description)
	require.NotNil(t, items[0].Assignee)
	assert.Equal(t, "김민수", *items[0].Assignee)
	assert.Equal(t, "high", items[0].Priority)
	require.NotNil(t, items[0].DueDate)
	assert.Equal(t, "2026-09-01", *items[0].DueDate)

	assert.Nil(t, items[1].Assignee)
	assert.Nil(t, items[1].DueDate)
}

func TestParseActionItemsFencedAndBareArray(t *testing.T) {
	raw := "```json\n[{\"description\": \"회의록 배포\"}]\n```"

	items, err := ParseActionItems(raw)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "회의록 배포", items[0].Description)
	assert.Equal(t, entities.ActionItemPriorityMedium, items[0].Priority)
}

func TestParseActionItemsDefaultsAndDrops(t *testing.T) {
	raw := `{"actionItems": [
		{"description": "  ", "priority": "high"},
		{"description": "검토", "priority": "urgent", "dueDate": "next week", "assignee": "  "}
	]}`

	items, err := ParseActionItems(raw)
	require.NoError(t, err)
	require.Len(t, items, 1)

	assert.Equal(t, "검토", items[0].Description)
	assert.Equal(t, entities.ActionItemPriorityMedium, items[0].Priority)
	assert.Nil(t, items[0].DueDate)
	assert.Nil(t, items[0].Assignee)
}

func TestParseActionItemsMalformed(t *testing.T) {
	_, err := ParseActionItems("죄송합니다, JSON을 생성할 수 없습니다.")
	assert.Error(t, err)
}

func TestParseSuggestedTagsEnvelope(t *testing.T) {
	raw := `{"tags": [
		{"name": "로드맵", "confidence": 0.92},
		{"name": "기획"}
	]}`

	tags, err := ParseSuggestedTags(raw)
	require.NoError(t, err)
	require.Len(t, tags, 2)

	assert.Equal(t, "로드맵", tags[0].Name)
	assert.InDelta(t, 0.92, *tags[0].Confidence, 1e-9)

	// Missing confidence defaults to 1.0
	assert.Equal(t, "기획", tags[1].Name)
	assert.InDelta(t, 1.0, *tags[1].Confidence, 1e-9)
}

func TestParseSuggestedTagsClampAndCap(t *testing.T) {
	raw := `[
		{"name": "a", "confidence": 1.7},
		{"name": "b", "confidence": -0.5},
		{"name": "c"}, {"name": "d"}, {"name": "e"}, {"name": "f"}
	]`

	tags, err := ParseSuggestedTags(raw)
	require.NoError(t, err)
	require.Len(t, tags, maxSuggestedTags)

	assert.InDelta(t, 1.0, *tags[0].Confidence, 1e-9)
	assert.InDelta(t, 0.0, *tags[1].Confidence, 1e-9)
}

func TestParseSuggestedTagsDropsNameless(t *testing.T) {
	raw := `{"tags": [{"name": "   "}, {"name": "디자인", "confidence": 0.8}]}`

	tags, err := ParseSuggestedTags(raw)
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, "디자인", tags[0].Name)
}

func TestExtractJSONFromProse(t *testing.T) {
	raw := "다음은 결과입니다:\n{\"tags\": [{\"name\": \"출시\", \"confidence\": 0.7}]}\n감사합니다."

	tags, err := ParseSuggestedTags(raw)
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, "출시", tags[0].Name)
}
