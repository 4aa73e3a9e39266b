package models

import (
	"errors"
	"net/url"
	"strings"
	"unicode/utf8"
)

type Lesson struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	VideoURL  string `json:"video_url"`
	Content   string `json:"content,omitempty"`
	CourseID  string `json:"course_id"` // immutable
	Order     int    `json:"order"`     // positive, gaps allowed after deletes
	CreatedAt int64  `json:"created_at"`
	UpdatedAt int64  `json:"updated_at"`
}

func (l *Lesson) Validate() error {
	l.Title = strings.TrimSpace(l.Title)
	if l.Title == "" {
		return errors.New("title required")
	}
	if utf8.RuneCountInString(l.Title) > maxTitleLen {
		return errors.New("title too long")
	}
	if err := validateVideoURL(l.VideoURL); err != nil {
		return err
	}
	if l.CourseID == "" {
		return errors.New("course_id required")
	}
	return nil
}

// LessonPatch carries a partial update; CourseID and CreatedAt are
// immutable and therefore absent.
type LessonPatch struct {
	Title    *string `json:"title,omitempty"`
	VideoURL *string `json:"video_url,omitempty"`
	Content  *string `json:"content,omitempty"`
}

func (p *LessonPatch) Validate() error {
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
	if p.VideoURL != nil {
		if err := validateVideoURL(*p.VideoURL); err != nil {
			return err
		}
	}
	return nil
}

var mediaExts = []string{".mp4", ".webm", ".ogg", ".m3u8", ".mov"}

// validateVideoURL accepts a recognized streaming-platform URL or a direct
// media URL. Anything else is rejected before it reaches the store.
func validateVideoURL(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return errors.New("video_url required")
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.New("video_url must be an http(s) URL")
	}
	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	switch host {
	case "youtube.com", "m.youtube.com", "youtu.be", "vimeo.com", "player.vimeo.com":
		return nil
	}
	path := strings.ToLower(u.Path)
	for _, ext := range mediaExts {
		if strings.HasSuffix(path, ext) {
			return nil
		}
	}
	return errors.New("video_url must be a streaming-platform or direct media URL")
}
