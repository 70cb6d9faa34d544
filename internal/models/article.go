package models

import "time"

type Article struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	AuthorID  int       `json:"author_id"`
	Images    []string  `json:"images"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ArticleDetail — полная статья с автором и списком лайкнувших.
type ArticleDetail struct {
	Article
	Author UserRef `json:"author"`
	Likes  []int   `json:"likes"`
}

// ArticleListItem — элемент ленты: счётчики и миниатюра вместо полного
// списка изображений.
type ArticleListItem struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	Author       UserRef   `json:"author"`
	LikesCount   int       `json:"likesCount"`
	CommentCount int       `json:"commentCount"`
	Thumbnail    *string   `json:"thumbnail"`
	CreatedAt    time.Time `json:"created_at"`
}

type ArticlesPage struct {
	Articles []*ArticleListItem `json:"articles"`
	Total    int                `json:"total"`
}

// LikeState — результат переключения лайка.
type LikeState struct {
	Liked      bool `json:"liked"`
	TotalLikes int  `json:"totalLikes"`
}

// Режимы сортировки ленты.
const (
	SortNewest    = "newest"
	SortOldest    = "oldest"
	SortTitleAZ   = "titleAZ"
	SortTitleZA   = "titleZA"
	SortMostLiked = "mostLiked"
)
