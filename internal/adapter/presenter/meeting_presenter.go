package presenter

import (
	"time"

	"github.com/meetinglog-app/meetinglog/internal/adapter/dto/meeting"
	"github.com/meetinglog-app/meetinglog/internal/domain/entities"
)

// ToParticipantResponse converts a Participant entity to its DTO
func ToParticipantResponse(p *entities.Participant) *meeting.ParticipantResponse {
	if p == nil {
		return nil
	}
	return &meeting.ParticipantResponse{
		ID:   p.ID.String(),
		Name: p.Name,
	}
}

// ToActionItemResponse converts an ActionItem entity to its DTO
func ToActionItemResponse(a *entities.ActionItem) *meeting.ActionItemResponse {
	if a == nil {
		return nil
	}

	response := &meeting.ActionItemResponse{
		ID:             a.ID.String(),
		MeetingID:      a.MeetingID.String(),
		Description:    a.Description,
		Priority:       a.Priority,
		Status:         a.Status,
		CompletionDate: a.CompletionDate,
		Notes:          a.Notes,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
	if a.DueDate != nil {
		due := time.Time(*a.DueDate).Format("2006-01-02")
		response.DueDate = &due
	}
	if a.Assignee != nil {
		response.Assignee = ToParticipantResponse(a.Assignee)
	}
	return response
}

// ToMeetingResponse converts a Meeting entity to MeetingResponse DTO
func ToMeetingResponse(m *entities.Meeting) *meeting.MeetingResponse {
	if m == nil {
		return nil
	}

	response := &meeting.MeetingResponse{
		ID:           m.ID.String(),
		Title:        m.Title,
		Date:         time.Time(m.Date).Format("2006-01-02"),
		StartTime:    m.StartTime,
		EndTime:      m.EndTime,
		Location:     m.Location,
		MeetingType:  m.MeetingType,
		RawContent:   m.RawContent,
		Summary:      m.Summary,
		Overview:     m.Overview,
		Discussion:   m.Discussion,
		Decisions:    m.Decisions,
		NextSteps:    m.NextSteps,
		Status:       string(m.Status),
		Participants: make([]meeting.ParticipantResponse, 0, len(m.Participants)),
		Tags:         make([]meeting.TagResponse, 0, len(m.Tags)),
		ActionItems:  make([]meeting.ActionItemResponse, 0, len(m.ActionItems)),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if m.TemplateID != nil {
		id := m.TemplateID.String()
		response.TemplateID = &id
	}

	for _, p := range m.Participants {
		if pr := ToParticipantResponse(p); pr != nil {
			response.Participants = append(response.Participants, *pr)
		}
	}
	for _, link := range m.Tags {
		if link.Tag == nil {
			continue
		}
		confidence := link.Confidence
		response.Tags = append(response.Tags, meeting.TagResponse{
			ID:            link.Tag.ID.String(),
			Name:          link.Tag.Name,
			Color:         link.Tag.Color,
			Confidence:    &confidence,
			IsAISuggested: link.Tag.IsAISuggested,
		})
	}
	for i := range m.ActionItems {
		if ar := ToActionItemResponse(&m.ActionItems[i]); ar != nil {
			response.ActionItems = append(response.ActionItems, *ar)
		}
	}

	return response
}

// ToMeetingListResponse converts a page of Meeting entities to its DTO
func ToMeetingListResponse(meetings []*entities.Meeting, total int64, page, pageSize int) *meeting.ListMeetingsResponse {
	responses := make([]meeting.MeetingResponse, 0, len(meetings))
	for _, m := range meetings {
		if mr := ToMeetingResponse(m); mr != nil {
			responses = append(responses, *mr)
		}
	}
	return &meeting.ListMeetingsResponse{
		Meetings: responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
}

// ToVersionResponse converts a MeetingVersion entity to its DTO
func ToVersionResponse(v *entities.MeetingVersion) *meeting.VersionResponse {
	if v == nil {
		return nil
	}
	return &meeting.VersionResponse{
		ID:            v.ID.String(),
		MeetingID:     v.MeetingID.String(),
		VersionNumber: v.VersionNumber,
		Title:         v.Title,
		RawContent:    v.RawContent,
		Summary:       v.Summary,
		Overview:      v.Overview,
		Discussion:    v.Discussion,
		Decisions:     v.Decisions,
		NextSteps:     v.NextSteps,
		ChangeSummary: v.ChangeSummary,
		CreatedAt:     v.CreatedAt,
	}
}

// ToVersionListResponse converts version history to DTOs
func ToVersionListResponse(versions []*entities.MeetingVersion) []meeting.VersionResponse {
	responses := make([]meeting.VersionResponse, 0, len(versions))
	for _, v := range versions {
		if vr := ToVersionResponse(v); vr != nil {
			responses = append(responses, *vr)
		}
	}
	return responses
}
