package model

import "time"

// EventType classifies a timeline entry.
type EventType string

const (
	EventAdmission   EventType = "admission"
	EventScholarship EventType = "scholarship"
)

// TimelineEvent is an upcoming admission or scholarship deadline.
type TimelineEvent struct {
	ID    string    `json:"id,omitempty" bson:"_id,omitempty"`
	Title string    `json:"title" bson:"title"`
	Date  time.Time `json:"date" bson:"date"`
	Type  EventType `json:"type" bson:"type"`
}
