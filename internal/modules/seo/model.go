// README: Stored SEO landing pages generated from plans or admin prompts.
package seo

import (
	"errors"
	"time"
	"unicode/utf8"

	"voyage/internal/types"
)

var (
	ErrNotFound  = errors.New("seo page not found")
	ErrSlugTaken = errors.New("slug already in use")
	ErrInvalid   = errors.New("invalid seo page")
)

// MetaDescriptionLength caps derived meta descriptions, in characters.
const MetaDescriptionLength = 160

type Page struct {
	ID              types.ID  `json:"id"`
	Slug            string    `json:"slug"`
	Title           string    `json:"title"`
	Content         string    `json:"content"`
	MetaDescription *string   `json:"metaDescription"`
	TravelPlanID    *types.ID `json:"travelPlanId"`
	CreatedAt       time.Time `json:"createdAt"`
}

type CreateCommand struct {
	Slug            string
	Title           string
	Content         string
	MetaDescription string
	TravelPlanID    types.ID
}

// Excerpt returns the first MetaDescriptionLength characters of content.
func Excerpt(content string) string {
	if utf8.RuneCountInString(content) <= MetaDescriptionLength {
		return content
	}
	return string([]rune(content)[:MetaDescriptionLength])
}
