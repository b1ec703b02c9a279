// Package entity contains the core business objects of the project.
package entity

import "time"

// Review is a star rating plus comment left on a single catalog entity.
// A review belongs to exactly one entity and is never referenced elsewhere.
type Review struct {
	ID          string    `json:"id"`                     // Unique identifier for the review.
	User        string    `json:"user"`                   // Display name of the submitter; not a foreign key.
	Rating      int       `json:"rating"`                 // Integer star rating, 1–5.
	Comment     string    `json:"comment"`                // Non-empty free text, at most 500 characters.
	Date        time.Time `json:"date"`                   // Client-side creation timestamp.
	AvatarColor string    `json:"avatar_color,omitempty"` // Cosmetic tag assigned at submission.
	ImageURL    string    `json:"image_url,omitempty"`    // Optional photo as a data URI or remote URL.
}
