package models

import "time"

// GamificationEvent represents a gamification event to broadcast via WebSocket
type GamificationEvent struct {
	Type      string    `json:"type"` // "badge_awarded", "level_up", "score_updated"
	UserID    string    `json:"userId"`
	BadgeID   string    `json:"badgeId,omitempty"`
	BadgeName string    `json:"badgeName,omitempty"`
	Level     int       `json:"level,omitempty"`
	Points    int       `json:"points,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
