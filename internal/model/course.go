package model

import "time"

// Course is a priced, video-linked unit of content owned by one admin.
// ImageURL points at the externally hosted course video; the client derives
// the thumbnail from it.
type Course struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	Price       float64   `json:"price"`
	CreatorID   string    `json:"creatorId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateCourseRequest is the payload for creating a course. The course fields
// themselves are accepted as-is; the client owns price/URL validation.
type CreateCourseRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl"`
	Price       float64 `json:"price"`
}

// UpdateCourseRequest is the payload for updating a course owned by the
// caller. Fields are pointers so an omitted key keeps its stored value; only
// the keys present in the payload are written.
type UpdateCourseRequest struct {
	CourseID    string   `json:"courseId" binding:"required,uuid"`
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	ImageURL    *string  `json:"imageUrl"`
	Price       *float64 `json:"price"`
}
