package domain

// Video is the canonical catalog entity. CreatedAt is kept as the raw
// timestamp string the remote store returns, it is display-only here.
type Video struct {
	Id          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	VideoURL    string `json:"video_url"`
	UserId      string `json:"user_id"`
	CreatedAt   string `json:"created_at"`
}

// Comment exists only in the context of a Video.
type Comment struct {
	Id        string `json:"id"`
	VideoId   string `json:"video_id"`
	UserId    string `json:"user_id"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}
