package meeting

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/meetinglog-app/meetinglog/internal/domain/entities"
)

// maxSuggestedTags caps how many tags a single suggestion pass may attach
const maxSuggestedTags = 5

// ExtractedActionItem is one action item decoded from the structured
// extraction output
type ExtractedActionItem struct {
	Description string  `json:"description"`
	Assignee    *string `json:"assignee"`
	Priority    string  `json:"priority"`
	DueDate     *string `json:"dueDate"`
}

// SuggestedTag is one tag decoded from the tag suggestion output
type SuggestedTag struct {
	Name       string   `json:"name"`
	Confidence *float64 `json:"confidence"`
}

// extractJSON strips markdown code fences and surrounding prose from model
// output, returning the innermost JSON payload
func extractJSON(raw string) string {
	s := strings.TrimSpace(raw)

	if start := strings.Index(s, "```"); start >= 0 {
		s = s[start+3:]
		s = strings.TrimPrefix(s, "json")
		if end := strings.Index(s, "```"); end >= 0 {
			s = s[:end]
		}
		s = strings.TrimSpace(s)
	}

	// Fall back to the outermost object or array
	objStart := strings.IndexByte(s, '{')
	arrStart := strings.IndexByte(s, '[')
	if arrStart >= 0 && (objStart < 0 || arrStart < objStart) {
		if end := strings.LastIndexByte(s, ']'); end > arrStart {
			return s[arrStart : end+1]
		}
	}
	if objStart >= 0 {
		if end := strings.LastIndexByte(s, '}'); end > objStart {
			return s[objStart : end+1]
		}
	}
	return s
}

// ParseActionItems decodes the raw extraction output into action items.
// Both the {"actionItems": [...]} envelope and a bare array are accepted.
// Entries without a description are dropped; unknown priorities fall back
// to medium and malformed due dates are cleared.
func ParseActionItems(raw string) ([]ExtractedActionItem, error) {
	payload := extractJSON(raw)

	var items []ExtractedActionItem
	var envelope struct {
		ActionItems []ExtractedActionItem `json:"actionItems"`
	}
	if err := json.Unmarshal([]byte(payload), &envelope); err == nil && envelope.ActionItems != nil {
		items = envelope.ActionItems
	} else if err := json.Unmarshal([]byte(payload), &items); err != nil {
		return nil, fmt.Errorf("failed to decode action items: %w", err)
	}

	out := make([]ExtractedActionItem, 0, len(items))
	for _, item := range items {
		item.Description = strings.TrimSpace(item.Description)
		if item.Description == "" {
			continue
		}

		if item.Assignee != nil {
			trimmed := strings.TrimSpace(*item.Assignee)
			if trimmed == "" || strings.EqualFold(trimmed, "null") {
				item.Assignee = nil
			} else {
				item.Assignee = &trimmed
			}
		}

		item.Priority = strings.ToLower(strings.TrimSpace(item.Priority))
		if !entities.IsValidActionItemPriority(item.Priority) {
			item.Priority = entities.ActionItemPriorityMedium
		}

		if item.DueDate != nil {
			trimmed := strings.TrimSpace(*item.DueDate)
			if _, err := time.Parse("2006-01-02", trimmed); err != nil {
				item.DueDate = nil
			} else {
				item.DueDate = &trimmed
			}
		}

		out = append(out, item)
	}
	return out, nil
}

// ParseSuggestedTags decodes the raw suggestion output into tags. Both the
// {"tags": [...]} envelope and a bare array are accepted. Nameless entries
// are dropped, confidence defaults to 1.0 and is clamped to [0, 1], and at
// most maxSuggestedTags entries are returned.
func ParseSuggestedTags(raw string) ([]SuggestedTag, error) {
	payload := extractJSON(raw)

	var tags []SuggestedTag
	var envelope struct {
		Tags []SuggestedTag `json:"tags"`
	}
	if err := json.Unmarshal([]byte(payload), &envelope); err == nil && envelope.Tags != nil {
		tags = envelope.Tags
	} else if err := json.Unmarshal([]byte(payload), &tags); err != nil {
		return nil, fmt.Errorf("failed to decode suggested tags: %w", err)
	}

	out := make([]SuggestedTag, 0, len(tags))
	for _, tag := range tags {
		tag.Name = strings.TrimSpace(tag.Name)
		if tag.Name == "" {
			continue
		}

		confidence := 1.0
		if tag.Confidence != nil {
			confidence = *tag.Confidence
			if confidence < 0 {
				confidence = 0
			} else if confidence > 1 {
				confidence = 1
			}
		}
		tag.Confidence = &confidence

		out = append(out, tag)
		if len(out) == maxSuggestedTags {
			break
		}
	}
	return out, nil
}
