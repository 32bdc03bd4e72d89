package model

import "time"

// Resource is a shared study material: an external link plus metadata.
//
// Resources are always attributed — there is no anonymity option, so the
// display identity is just the author's name (no avatar snapshot is kept).
// Downloads is a display-only counter; no current operation increments it.
type Resource struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Course      string    `json:"course"`
	Tags        []string  `json:"tags"`
	Link        string    `json:"link"`
	UserID      string    `json:"userId"`
	UserName    string    `json:"userName"`
	Votes       int       `json:"votes"`
	Downloads   int       `json:"downloads"`
	CreatedAt   time.Time `json:"createdAt"`
}
