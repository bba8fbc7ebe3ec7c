// File: models/submission.go
package models

import "time"

// SubmissionStatus is the review state of a P2P submission.
type SubmissionStatus string

const (
	StatusPending  SubmissionStatus = "pending"
	StatusApproved SubmissionStatus = "approved"
	StatusRejected SubmissionStatus = "rejected"
)

// IsDecision reports whether s is a terminal decision an admin may apply.
func (s SubmissionStatus) IsDecision() bool {
	return s == StatusApproved || s == StatusRejected
}

// P2PSubmission is a document in the p2p_submissions collection.
type P2PSubmission struct {
	ID           string           `json:"id" firestore:"-"`
	User1ID      string           `json:"user1Id" firestore:"user1Id"`
	User2ID      string           `json:"user2Id" firestore:"user2Id"`
	User1FunFact string           `json:"user1FunFact" firestore:"user1FunFact"`
	User2FunFact string           `json:"user2FunFact" firestore:"user2FunFact"`
	Status       SubmissionStatus `json:"status" firestore:"status"`
	SubmittedAt  time.Time        `json:"submittedAt" firestore:"submittedAt"`
	ReviewedAt   *time.Time       `json:"reviewedAt,omitempty" firestore:"reviewedAt,omitempty"`
	ReviewedBy   string           `json:"reviewedBy,omitempty" firestore:"reviewedBy,omitempty"`
}

// PendingView is a pending submission joined with both players' usernames.
type PendingView struct {
	P2PSubmission
	User1Name string `json:"user1Name"`
	User2Name string `json:"user2Name"`
}
