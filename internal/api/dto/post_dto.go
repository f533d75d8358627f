package dto

// PostDTO 帖子投影，created_at 为 RFC3339
type PostDTO struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Caption   string `json:"caption"`
	URL       string `json:"url"`
	FileType  string `json:"file_type"`
	FileName  string `json:"file_name"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	CreatedAt string `json:"created_at"`
}

// FeedDTO Feed 返回体
type FeedDTO struct {
	Posts []*PostDTO `json:"posts"`
}
