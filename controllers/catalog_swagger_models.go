package controllers

import "coursecatalog/models"

// Swagger response models for the JSON export endpoints.
// These types exist for documentation generation only.

// CourseListResponse is the envelope for course list exports.
type CourseListResponse struct {
	Course []models.Course `json:"Course"`
}

// CourseResponse is the envelope for a single course export.
type CourseResponse struct {
	Course models.Course `json:"Course"`
}

// StandardErrorResponse is the generic error body.
type StandardErrorResponse struct {
	Error string `json:"error" example:"record not found"`
}
