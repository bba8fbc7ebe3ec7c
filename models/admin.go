// Package models defines data structures used across the application.
// File: models/admin.go
package models

// ----------------------- admin model -----------------------

// Admin is one dashboard operator entry from the credentials file.
type Admin struct {
	Username string `json:"username"`
	Password string `json:"password"` // bcrypt hash
	IsAdmin  bool   `json:"isadmin"`
}

// AdminCreds holds every operator allowed to sign in.
type AdminCreds struct {
	Admins []Admin `json:"admins"`
}

// Operator identifies the signed-in admin on whose behalf an operation runs.
type Operator struct {
	Username string
}
