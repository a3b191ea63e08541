package meeting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleNarrative = `## 1. 미팅 개요
분기 로드맵을 확정하기 위한 미팅.

## 2. 주요 논의 사항
- 신규 기능 우선순위
- 일정 조정

## 3. 결정 사항
로드맵 v2 확정.

## 4. 액션 아이템
- **담당자:** 김민수: 일정 공유

## 5. 다음 미팅 안건
출시 준비 상태 점검`

func TestParseSections(t *testing.T) {
	parsed := ParseSections(sampleNarrative)

	assert.Equal(t, "분기 로드맵을 확정하기 위한 미팅.", parsed.Overview)
	assert.Equal(t, "- 신규 기능 우선순위\n- 일정 조정", parsed.Discussion)
	assert.Equal(t, "로드맵 v2 확정.", parsed.Decisions)
	assert.Equal(t, "- **담당자:** 김민수: 일정 공유", parsed.ActionItems)
	assert.Equal(t, "출시 준비 상태 점검", parsed.NextSteps)
}

func TestParseSectionsMissingMarker(t *testing.T) {
	narrative := `## 1. 미팅 개요
개요 내용

## 2. 주요 논의 사항
논의 내용

## 4. 액션 아이템
할 일

## 5. 다음 미팅 안건
다음 안건`

	parsed := ParseSections(narrative)

	assert.Equal(t, "개요 내용", parsed.Overview)
	assert.Equal(t, "논의 내용", parsed.Discussion)
	assert.Equal(t, "", parsed.Decisions)
	assert.Equal(t, "할 일", parsed.ActionItems)
	assert.Equal(t, "다음 안건", parsed.NextSteps)
}

func TestParseSectionsEmptyInput(t *testing.T) {
	parsed := ParseSections("")

	assert.Equal(t, "", parsed.Overview)
	assert.Equal(t, "", parsed.Discussion)
	assert.Equal(t, "", parsed.Decisions)
	assert.Equal(t, "", parsed.NextSteps)
}

func TestParseSectionsNoMarkers(t *testing.T) {
	parsed := ParseSections("그냥 자유 형식의 텍스트입니다. 섹션 헤딩이 없습니다.")

	assert.Equal(t, Sections{}, parsed)
}

func TestParseSectionsHeadingVariants(t *testing.T) {
	// Different heading depth and "1)" style numbering still match
	narrative := "# 1) 미팅 개요\n개요\n### 2. 주요 논의 사항\n논의"

	parsed := ParseSections(narrative)

	assert.Equal(t, "개요", parsed.Overview)
	assert.Equal(t, "논의", parsed.Discussion)
}

func TestParseSectionsDuplicateHeadingKeepsFirst(t *testing.T) {
	narrative := "## 1. 미팅 개요\n첫 번째\n## 1. 미팅 개요\n두 번째"

	parsed := ParseSections(narrative)

	assert.Equal(t, "첫 번째", parsed.Overview)
}

func TestParseSectionsLastSectionRunsToEnd(t *testing.T) {
	narrative := "## 5. 다음 미팅 안건\n마지막 줄까지\n포함"

	parsed := ParseSections(narrative)

	assert.Equal(t, "마지막 줄까지\n포함", parsed.NextSteps)
}
