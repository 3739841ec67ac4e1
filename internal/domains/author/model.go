package author

import (
	"time"

	"github.com/google/uuid"
)

// SocialLinks là optional social profile của author.
type SocialLinks struct {
	Facebook string `json:"facebook,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Twitter  string `json:"twitter,omitempty"`
}

type Author struct {
	ID          uuid.UUID    `json:"id"`
	Name        string       `json:"name"`
	Slug        string       `json:"slug"`
	Title       string       `json:"title"`
	Avatar      string       `json:"avatar"`
	Bio         string       `json:"bio"`
	SocialLinks *SocialLinks `json:"socialLinks,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}
