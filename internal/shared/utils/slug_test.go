package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "vietnamese diacritics",
			input: "Bác sỹ Vật lý trị liệu",
			want:  "bac-sy-vat-ly-tri-lieu",
		},
		{
			name:  "plain english",
			input: "Hello World",
			want:  "hello-world",
		},
		{
			name:  "special chars collapse to single hyphen",
			input: "Đau lưng!!! & thoát vị đĩa đệm",
			want:  "dau-lung-thoat-vi-dia-dem",
		},
		{
			name:  "leading trailing junk trimmed",
			input: "  --Phục hồi chức năng--  ",
			want:  "phuc-hoi-chuc-nang",
		},
		{
			name:  "digits kept",
			input: "Top 10 bài tập",
			want:  "top-10-bai-tap",
		},
		{
			name:  "no alphanumeric content",
			input: "!!! ???",
			want:  "",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateSlug(tt.input))
		})
	}
}

func TestGenerateSlugDeterministic(t *testing.T) {
	input := "Bác sỹ Vật lý trị liệu"
	first := GenerateSlug(input)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, GenerateSlug(input))
	}
}

func TestGenerateSlugCharset(t *testing.T) {
	valid := regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

	inputs := []string{
		"Bác sỹ Vật lý trị liệu",
		"ĐIỀU TRỊ CỘT SỐNG",
		"Massage & trị liệu 2024",
	}

	for _, input := range inputs {
		slug := GenerateSlug(input)
		assert.Regexp(t, valid, slug, "slug của %q phải chỉ chứa [a-z0-9-], không hyphen đầu/cuối", input)
	}
}
