package model

import "time"

// Purchase links a user to a course they have bought. There is deliberately
// no uniqueness over (UserID, CourseID): re-purchasing is accepted.
type Purchase struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	CourseID  string    `json:"courseId"`
	CreatedAt time.Time `json:"createdAt"`
}

// PurchaseRequest is the payload for purchasing a course.
type PurchaseRequest struct {
	CourseID string `json:"courseId" binding:"required,uuid"`
}
