package author

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type CreateAuthorRequest struct {
	Name        string       `json:"name" binding:"required"`
	Title       string       `json:"title"`
	Avatar      string       `json:"avatar"`
	Bio         string       `json:"bio"`
	SocialLinks *SocialLinks `json:"socialLinks"`
}

func (r CreateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("tên tác giả là bắt buộc"),
			validation.Length(2, 150),
		),
		validation.Field(&r.Title, validation.Length(0, 200)),
		validation.Field(&r.Bio, validation.Length(0, 2000)),
	)
}

// UpdateAuthorRequest: nil field = giữ nguyên
type UpdateAuthorRequest struct {
	Name        *string      `json:"name"`
	Title       *string      `json:"title"`
	Avatar      *string      `json:"avatar"`
	Bio         *string      `json:"bio"`
	SocialLinks *SocialLinks `json:"socialLinks"`
}

func (r UpdateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.When(r.Name != nil, validation.Length(2, 150)),
		),
		validation.Field(&r.Bio,
			validation.When(r.Bio != nil, validation.Length(0, 2000)),
		),
	)
}
