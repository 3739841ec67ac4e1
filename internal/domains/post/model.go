package post

import (
	"time"

	"github.com/google/uuid"
)

// Post là một bài viết (published hoặc draft).
// JSON tags là shape persist xuống JSON-file backend và trả về API;
// relational backend map các cột snake_case sang các fields này.
type Post struct {
	ID        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Slug      string     `json:"slug"`
	Excerpt   string     `json:"excerpt"`
	Content   string     `json:"content"`
	Category  string     `json:"category"`
	Image     string     `json:"image"`
	ReadTime  string     `json:"readTime"`
	Published bool       `json:"published"`
	AuthorID  *uuid.UUID `json:"authorId"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}
