package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	backoff "github.com/cenkalti/backoff/v4"

	"github.com/meetinglog-app/meetinglog/pkg/config"
)

// SummarizeInput carries the meeting context for the summarize operation
type SummarizeInput struct {
	Title        string
	Date         string
	Participants []string
	Content      string
	Template     string
}

// Generator abstracts the text-generation capability consumed by the
// ingestion pipeline and search. Summarize and AnswerQuestion return the
// generated narrative; ExtractActionItems and SuggestTags return the raw
// model output, which callers must parse defensively.
type Generator interface {
	Summarize(ctx context.Context, in SummarizeInput) (string, error)
	ExtractActionItems(ctx context.Context, content string) (string, error)
	SuggestTags(ctx context.Context, content string, existingNames []string) (string, error)
	AnswerQuestion(ctx context.Context, question, corpus string) (string, error)
}

// OpenAIClient is a minimal client for OpenAI chat completions
type OpenAIClient struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

// NewOpenAIClient creates an OpenAI client using values from the provided
// config. Pass a nil config to fall back to environment variables.
func NewOpenAIClient(cfg *config.OpenAIConfig) *OpenAIClient {
	var apiKey string
	if cfg != nil {
		apiKey = cfg.APIKey
	}
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}

	var base string
	if cfg != nil && cfg.BaseURL != "" {
		base = cfg.BaseURL
	} else {
		base = os.Getenv("OPENAI_API_URL")
		if base == "" {
			base = "https://api.openai.com"
		}
	}

	model := "gpt-4o-mini"
	if cfg != nil && cfg.Model != "" {
		model = cfg.Model
	}

	return &OpenAIClient{
		apiKey:  apiKey,
		baseURL: base,
		model:   model,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

// ChatMessage is a single chat completion message
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the shape for chat completion requests
type ChatRequest struct {
	Model          string          `json:"model"`
	Messages       []ChatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature,omitempty"`
	ResponseFormat *ResponseFormat `json:"response_format,omitempty"`
}

// ResponseFormat requests structured output from the model
type ResponseFormat struct {
	Type string `json:"type"`
}

// ChatResponse is a minimal response shape
type ChatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// complete sends one chat completion request and returns the assistant
// content. Transport failures are retried with exponential backoff; non-2xx
// responses are not retried.
func (c *OpenAIClient) complete(ctx context.Context, system, user string, temperature float64, jsonMode bool) (string, error) {
	reqBody := ChatRequest{
		Model: c.model,
		Messages: []ChatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: temperature,
	}
	if jsonMode {
		reqBody.ResponseFormat = &ResponseFormat{Type: "json_object"}
	}

	b, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	endpoint := c.baseURL + "/v1/chat/completions"

	var content string
	call := func() error {
		req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(b))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 400 {
			return backoff.Permanent(fmt.Errorf("openai returned status %d", resp.StatusCode))
		}

		var cr ChatResponse
		if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
			return backoff.Permanent(err)
		}
		if len(cr.Choices) == 0 {
			return backoff.Permanent(fmt.Errorf("empty response from openai"))
		}
		content = cr.Choices[0].Message.Content
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 1 * time.Second
	bo.MaxElapsedTime = 20 * time.Second

	if err := backoff.Retry(call, backoff.WithContext(bo, ctx)); err != nil {
		return "", err
	}
	return content, nil
}

// Summarize turns raw meeting content into the structured narrative with the
// five numbered sections the section parser expects.
func (c *OpenAIClient) Summarize(ctx context.Context, in SummarizeInput) (string, error) {
	participants := strings.Join(in.Participants, ", ")
	if participants == "" {
		participants = "미기재"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "다음 미팅 내용을 구조화된 마크다운 형식으로 정리해주세요.\n\n")
	fmt.Fprintf(&sb, "제목: %s\n날짜: %s\n참석자: %s\n\n내용:\n%s\n\n", in.Title, in.Date, participants, in.Content)
	if in.Template != "" {
		fmt.Fprintf(&sb, "다음 템플릿 형식을 참고하세요:\n%s\n\n", in.Template)
	}
	sb.WriteString(`다음 형식으로 정리해주세요:
1. 미팅 개요 (전체 미팅의 목적과 주요 내용 요약)
2. 주요 논의 사항 (불릿 포인트로 정리)
3. 결정 사항 (구체적인 결정 내용)
4. 액션 아이템 (담당자 포함 - 형식: "- **담당자:** [이름]: [액션 아이템]")
5. 다음 미팅 안건 (있다면)

각 섹션 제목은 "## 1. 미팅 개요"처럼 번호가 붙은 마크다운 헤딩으로 작성하세요.
전문적이고 명확하게 작성하되, 원본 내용의 모든 중요한 정보를 포함해주세요.`)

	system := "당신은 전문적인 미팅 기록 정리 전문가입니다. 미팅 내용을 구조화되고 읽기 쉬운 형식으로 정리합니다."
	return c.complete(ctx, system, sb.String(), 0.7, false)
}

// ExtractActionItems asks the model for a JSON list of action items found in
// the content. The raw output is returned for defensive parsing by the
// caller.
func (c *OpenAIClient) ExtractActionItems(ctx context.Context, content string) (string, error) {
	prompt := fmt.Sprintf(`다음 미팅 내용에서 액션 아이템만 추출해주세요.

미팅 내용:
%s

각 액션 아이템을 다음 JSON 형식으로 반환해주세요:
{
  "actionItems": [
    {
      "description": "액션 아이템 설명",
      "assignee": "담당자 이름 (없으면 null)",
      "priority": "high/medium/low",
      "dueDate": "기한 (YYYY-MM-DD 형식, 없으면 null)"
    }
  ]
}

액션 아이템이 없으면 빈 배열을 반환하세요.`, content)

	system := "당신은 미팅 내용을 분석하여 액션 아이템을 추출하는 전문가입니다. 항상 valid JSON만 반환하세요."
	return c.complete(ctx, system, prompt, 0.3, true)
}

// SuggestTags asks the model for up to five topical tags with confidence
// scores. The raw output is returned for defensive parsing by the caller.
func (c *OpenAIClient) SuggestTags(ctx context.Context, content string, existingNames []string) (string, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "다음 미팅 내용을 분석하여 적절한 태그를 제안해주세요.\n\n미팅 내용:\n%s\n\n", content)
	if len(existingNames) > 0 {
		fmt.Fprintf(&sb, "기존 태그 목록: %s\n\n", strings.Join(existingNames, ", "))
	}
	sb.WriteString(`다음 JSON 형식으로 태그를 제안해주세요:
{
  "tags": [
    {
      "name": "태그명",
      "confidence": 0.95
    }
  ]
}

최대 5개까지 제안하세요. 기존 태그가 있으면 우선적으로 사용하고, 필요시 새 태그를 제안하세요.`)

	system := "당신은 문서 분류 및 태깅 전문가입니다. 내용을 분석하여 적절한 태그를 제안합니다."
	return c.complete(ctx, system, sb.String(), 0.4, true)
}

// AnswerQuestion answers a question against the supplied meeting corpus
func (c *OpenAIClient) AnswerQuestion(ctx context.Context, question, corpus string) (string, error) {
	prompt := fmt.Sprintf(`다음은 저장된 미팅로그들입니다:

%s

질문: %s

위 미팅로그들을 기반으로 질문에 대한 답변을 작성해주세요.
답변 시 관련 미팅의 날짜와 제목을 언급하며, 구체적인 내용을 인용해주세요.
관련 정보가 없다면 솔직하게 "관련 정보를 찾을 수 없습니다"라고 답변해주세요.`, corpus, question)

	system := "당신은 미팅로그 검색 및 분석 전문가입니다. 저장된 미팅 기록을 분석하여 사용자의 질문에 정확하고 상세하게 답변합니다."
	return c.complete(ctx, system, prompt, 0.5, false)
}
