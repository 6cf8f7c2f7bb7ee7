package dto

import (
	"github.com/fadilmartias/casting-intake/internal/model"
	"github.com/google/uuid"
)

type FeedbackDTO struct {
	Score  float64 `json:"score"`
	Advice string  `json:"advice"`
	Stale  bool    `json:"stale"`
}

type IntakeViewDTO struct {
	SessionID   uuid.UUID              `json:"session_id"`
	State       model.ViewState        `json:"state"` // LOGIN, DASHBOARD or SUCCESS
	Dossier     model.CandidateDossier `json:"dossier"`
	HostMessage string                 `json:"host_message,omitempty"`
	HostName    string                 `json:"host_name,omitempty"`
	Feedback    *FeedbackDTO           `json:"feedback"`
	Analyzing   bool                   `json:"analyzing"`
	SwimLevels  []model.SwimLevel      `json:"swim_levels"`
}

func NewIntakeViewDTO(v model.SessionView, hostName string) IntakeViewDTO {
	out := IntakeViewDTO{
		SessionID:   v.ID,
		State:       v.State,
		Dossier:     v.Dossier,
		HostMessage: v.HostMessage,
		Analyzing:   v.Analyzing,
		SwimLevels:  model.SwimLevels,
	}
	if v.HostMessage != "" {
		out.HostName = hostName
	}
	if v.Feedback != nil {
		out.Feedback = &FeedbackDTO{
			Score:  v.Feedback.Score,
			Advice: v.Feedback.Advice,
			Stale:  v.FeedbackStale,
		}
	}
	return out
}
