package entity

import (
	"time"
)

// Actions recorded in the access log.
const (
	ActionLogin         = "LOGIN"
	ActionLogout        = "LOGOUT"
	ActionRegister      = "REGISTER"
	ActionUpdate        = "UPDATE"
	ActionStatusChange  = "STATUS_CHANGE"
	ActionPasswordReset = "PASSWORD_RESET"
)

// Outcomes of a logged action.
const (
	StatusSuccess = "SUCCESS"
	StatusFailed  = "FAILED"
)

// AccessLog is an append-only audit record of a security-relevant event.
// Entries are never updated or deleted by normal flow.
type AccessLog struct {
	ID         int64     `json:"id"`
	UserID     string    `json:"userId"`
	Username   string    `json:"username,omitempty"`
	AccessTime time.Time `json:"accessTime"`
	IPAddress  string    `json:"ipAddress"`
	UserAgent  string    `json:"userAgent"`
	Action     string    `json:"action"`
	Status     string    `json:"status"`
}
