// File: models/user.go
package models

import "time"

// RoleAttendee is the role every provisioned account receives.
const RoleAttendee = "attendee"

// UserAccount is a profile document in the users collection, keyed by auth UID.
type UserAccount struct {
	ID                string    `json:"id" firestore:"-"`
	Username          string    `json:"username" firestore:"username"`
	Email             string    `json:"email" firestore:"email"`
	TradingKey        string    `json:"tradingKey" firestore:"tradingKey"`
	PreAssignedCardID string    `json:"preAssignedCardId" firestore:"preAssignedCardId"`
	Role              string    `json:"role" firestore:"role"`
	CreatedAt         time.Time `json:"createdAt" firestore:"createdAt"`
}

// UserProfile is the operator's input for a new account.
type UserProfile struct {
	Username          string `form:"username" binding:"required"`
	Email             string `form:"email" binding:"required"`
	Password          string `form:"password" binding:"required"`
	PreAssignedCardID string `form:"preAssignedCardId" binding:"required"`
}
