package domain

import "github.com/google/uuid"

// Stream names
const (
	StreamRouteSequence = "stream:route:sequence"
	StreamRouteDone     = "stream:route:done"
)

// RouteSequenceEvent - входящее событие на упорядочивание точек
type RouteSequenceEvent struct {
	RequestID uuid.UUID  `json:"request_id"`
	SessionID string     `json:"session_id,omitempty"`
	Mode      TravelMode `json:"mode"`
	Points    []Point    `json:"points"`
}

// HasEnoughPoints проверяет, есть ли что упорядочивать
func (e *RouteSequenceEvent) HasEnoughPoints() bool {
	return len(e.Points) >= 2
}

// RouteSequenceDoneEvent - результат упорядочивания
type RouteSequenceDoneEvent struct {
	RequestID        uuid.UUID   `json:"request_id"`
	SessionID        string      `json:"session_id,omitempty"`
	Mode             TravelMode  `json:"mode"`
	Steps            []RouteStep `json:"steps"`
	TotalDistanceKm  float64     `json:"total_distance_km"`
	TotalDurationMin int         `json:"total_duration_min"`
	Error            string      `json:"error,omitempty"`
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
