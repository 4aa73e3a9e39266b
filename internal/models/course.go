package models

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// Categories a course can be filed under. Fixed set; free-form categories
// are rejected at validation time.
var Categories = []string{
	"Programming",
	"Design",
	"Business",
	"Marketing",
	"Personal Development",
	"Health & Fitness",
	"Music",
	"Photography",
	"Other",
}

func ValidCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

const maxTitleLen = 100

type Course struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category"`
	CreatedBy   string `json:"created_by"` // instructor id, immutable
	CreatedAt   int64  `json:"created_at"` // epoch millis
	UpdatedAt   int64  `json:"updated_at"`
}

func (c *Course) Validate() error {
	c.Title = strings.TrimSpace(c.Title)
	if c.Title == "" {
		return errors.New("title required")
	}
	if utf8.RuneCountInString(c.Title) > maxTitleLen {
		return errors.New("title too long")
	}
	if !ValidCategory(c.Category) {
		return errors.New("unknown category")
	}
	if c.CreatedBy == "" {
		return errors.New("created_by required")
	}
	return nil
}

// CoursePatch carries a partial update; nil fields are left untouched.
// CreatedBy and CreatedAt are absent on purpose: both are immutable.
type CoursePatch struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Category    *string `json:"category,omitempty"`
}

func (p *CoursePatch) Validate() error {
	if p.Title != nil {
		t := strings.TrimSpace(*p.Title)
		if t == "" {
			return errors.New("title required")
		}
		if utf8.RuneCountInString(t) > maxTitleLen {
			return errors.New("title too long")
		}
		p.Title = &t
	}
	if p.Category != nil && !ValidCategory(*p.Category) {
		return errors.New("unknown category")
	}
	return nil
}
