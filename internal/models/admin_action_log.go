package models

import "time"

type AdminActionLog struct {
	ID          int       `json:"id"`
	AdminUserID int       `json:"admin_user_id"`
	ActionType  string    `json:"action_type"`
	TargetType  string    `json:"target_type"`
	TargetID    *int      `json:"target_id,omitempty"`
	Description string    `json:"description"`
	IPAddress   *string   `json:"ip_address,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
