package post

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

type CreatePostRequest struct {
	Title     string     `json:"title" binding:"required"`
	Excerpt   string     `json:"excerpt"`
	Content   string     `json:"content" binding:"required"`
	Category  string     `json:"category"`
	Image     string     `json:"image"`
	ReadTime  string     `json:"readTime"`
	Published bool       `json:"published"`
	AuthorID  *uuid.UUID `json:"authorId"`
}

func (r CreatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("tiêu đề là bắt buộc"),
			validation.Length(3, 200),
		),
		validation.Field(&r.Excerpt, validation.Length(0, 500)),
		validation.Field(&r.Content,
			validation.Required.Error("nội dung là bắt buộc"),
		),
		validation.Field(&r.Category, validation.Length(0, 100)),
	)
}

// UpdatePostRequest là partial update: nil field = giữ nguyên (PATCH behavior)
type UpdatePostRequest struct {
	Title     *string    `json:"title"`
	Excerpt   *string    `json:"excerpt"`
	Content   *string    `json:"content"`
	Category  *string    `json:"category"`
	Image     *string    `json:"image"`
	ReadTime  *string    `json:"readTime"`
	Published *bool      `json:"published"`
	AuthorID  *uuid.UUID `json:"authorId"`
}

func (r UpdatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.When(r.Title != nil, validation.Length(3, 200)),
		),
		validation.Field(&r.Excerpt,
			validation.When(r.Excerpt != nil, validation.Length(0, 500)),
		),
	)
}
