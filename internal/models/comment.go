package models

import "time"

type Comment struct {
	ID        int64     `json:"id"`
	ArticleID int64     `json:"article_id"`
	AuthorID  int       `json:"author_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// CommentWithAuthor — комментарий с именем автора для списков.
type CommentWithAuthor struct {
	Comment
	Author UserRef `json:"author"`
}

type CommentRequest struct {
	Text string `json:"text"`
}
