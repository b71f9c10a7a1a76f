package reallocapimodels

import (
	"time"

	"realloc-backend/models"
	dbmodels "realloc-backend/models/db"
)

type AuditEventView struct {
	ID          string                  `json:"id"`
	Action      models.AuditAction      `json:"action"`
	EntityType  models.EntityType       `json:"entity_type"`
	EntityID    string                  `json:"entity_id"`
	Description string                  `json:"description,omitempty"`
	Changes     []dbmodels.FieldChanges `json:"changes,omitempty"`
	Responsible string                  `json:"responsible,omitempty"`
	TaskID      *string                 `json:"task_id,omitempty"`
	CreatedAt   time.Time               `json:"created_at"`
}

func AuditEventConvert(rec dbmodels.AuditEvent) AuditEventView {
	view := AuditEventView{
		ID:          rec.ID,
		Action:      rec.Action,
		EntityType:  rec.EntityType,
		EntityID:    rec.EntityID,
		Description: rec.Changes.Description,
		Changes:     rec.Changes.Data,
		TaskID:      rec.TaskID,
		CreatedAt:   rec.CreatedAt,
	}
	if rec.Responsible != nil {
		view.Responsible = rec.Responsible.UserName
	}
	return view
}

type TaskStatusEventView struct {
	ID             string            `json:"id"`
	TaskID         string            `json:"task_id"`
	PreviousStatus models.TaskStatus `json:"previous_status"`
	NewStatus      models.TaskStatus `json:"new_status"`
	OccurredAt     time.Time         `json:"occurred_at"`
	Responsible    string            `json:"responsible,omitempty"`
}

func TaskStatusEventConvert(rec dbmodels.TaskStatusEvent) TaskStatusEventView {
	view := TaskStatusEventView{
		ID:             rec.ID,
		TaskID:         rec.TaskID,
		PreviousStatus: rec.PreviousStatus,
		NewStatus:      rec.NewStatus,
		OccurredAt:     rec.OccurredAt,
	}
	if rec.Responsible != nil {
		view.Responsible = rec.Responsible.UserName
	}
	return view
}
