package kafka

import (
	"strings"

	"parcel-server/internal/service/tracking"
)

// EventDTO is a data transfer object for a tracking status event.
type EventDTO struct {
	TrackingID string `json:"tracking_id"`
	ParcelID   string `json:"parcel_id"`
	Status     string `json:"status"`
	Message    string `json:"message"`
	UpdatedBy  string `json:"updated_by"`
}

// ToDomain converts EventDTO to tracking.AppendInput
func ToDomain(dto EventDTO) tracking.AppendInput {
	return tracking.AppendInput{
		TrackingID: strings.TrimSpace(dto.TrackingID),
		ParcelID:   strings.TrimSpace(dto.ParcelID),
		Status:     strings.TrimSpace(dto.Status),
		Message:    dto.Message,
		UpdatedBy:  strings.TrimSpace(dto.UpdatedBy),
	}
}
