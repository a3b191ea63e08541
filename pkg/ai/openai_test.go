package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meetinglog-app/meetinglog/pkg/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*OpenAIClient, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewOpenAIClient(&config.OpenAIConfig{
		APIKey:  "test-key",
		BaseURL: server.URL,
		Model:   "gpt-4o-mini",
	})
	return client, server
}

func chatResponse(content string) map[string]interface{} {
	return map[string]interface{}{
		"choices": []map[string]interface{}{
			{"message": map[string]string{"content": content}},
		},
	}
}

func TestSummarizeSendsChatRequest(t *testing.T) {
	var got ChatRequest
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(chatResponse("## 1. 미팅 개요\n요약"))
	})

	summary, err := client.Summarize(context.Background(), SummarizeInput{
		Title:        "주간 회의",
		Date:         "2026-08-28",
		Participants: []string{"김민수"},
		Content:      "논의 내용",
	})
	require.NoError(t, err)
	assert.Equal(t, "## 1. 미팅 개요\n요약", summary)

	assert.Equal(t, "gpt-4o-mini", got.Model)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Contains(t, got.Messages[1].Content, "주간 회의")
	assert.Contains(t, got.Messages[1].Content, "김민수")
	assert.Nil(t, got.ResponseFormat)
}

func TestExtractActionItemsRequestsJSONMode(t *testing.T) {
	var got ChatRequest
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(chatResponse(`{"actionItems": []}`))
	})

	raw, err := client.ExtractActionItems(context.Background(), "내용")
	require.NoError(t, err)
	assert.Equal(t, `{"actionItems": []}`, raw)

	require.NotNil(t, got.ResponseFormat)
	assert.Equal(t, "json_object", got.ResponseFormat.Type)
}

func TestSuggestTagsIncludesExistingNames(t *testing.T) {
	var got ChatRequest
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(chatResponse(`{"tags": []}`))
	})

	_, err := client.SuggestTags(context.Background(), "내용", []string{"로드맵", "기획"})
	require.NoError(t, err)

	assert.Contains(t, got.Messages[1].Content, "로드맵, 기획")
}

func TestCompleteServerErrorNotRetried(t *testing.T) {
	calls := 0
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadRequest)
	})

	_, err := client.Summarize(context.Background(), SummarizeInput{Title: "t", Content: "c"})
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestCompleteEmptyChoices(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(ChatResponse{})
	})

	_, err := client.AnswerQuestion(context.Background(), "질문", "코퍼스")
	assert.Error(t, err)
}
