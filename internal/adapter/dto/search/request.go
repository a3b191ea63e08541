package search

// SearchRequest represents the request body for natural-language search
type SearchRequest struct {
	Question string `json:"question" validate:"required,max=1000"`
}

// RelatedMeetingResponse is a compact meeting reference in search results
type RelatedMeetingResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Date  string `json:"date"`
}

// SearchResponse is the answer plus the most related meetings
type SearchResponse struct {
	Answer          string                   `json:"answer"`
	RelatedMeetings []RelatedMeetingResponse `json:"related_meetings"`
}
