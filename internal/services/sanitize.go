package services

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer — два профиля bluemonday: strict для заголовков и имён
// (остаётся только текст), ugc для тел статей и комментариев.
type Sanitizer struct {
	strict *bluemonday.Policy
	ugc    *bluemonday.Policy
}

func NewSanitizer() *Sanitizer {
	ugc := bluemonday.UGCPolicy()
	ugc.AllowElements("img")
	ugc.AllowAttrs("src", "alt").OnElements("img")
	ugc.RequireNoFollowOnLinks(true)
	return &Sanitizer{
		strict: bluemonday.StrictPolicy(),
		ugc:    ugc,
	}
}

// Title — заголовки и имена: вырезаем всю разметку.
func (s *Sanitizer) Title(in string) string {
	return strings.TrimSpace(s.strict.Sanitize(in))
}

// Body — текст статьи: безопасный HTML.
func (s *Sanitizer) Body(in string) string {
	return s.ugc.Sanitize(in)
}

// Comment — комментарии чистятся тем же UGC-профилем.
func (s *Sanitizer) Comment(in string) string {
	return s.ugc.Sanitize(in)
}

// PlainText убирает все теги — для проверки, что после санитизации
// в комментарии остался осмысленный текст.
func (s *Sanitizer) PlainText(in string) string {
	return strings.TrimSpace(s.strict.Sanitize(in))
}
