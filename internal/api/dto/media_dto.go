package dto

// MediaObject 上传成功后的远端对象描述
type MediaObject struct {
	URL    string `json:"url"`
	Name   string `json:"name"`
	Kind   string `json:"kind"` // image | video
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// PendingUpload 待确认上传的台账条目
type PendingUpload struct {
	MimeType  string `json:"mime_type"`
	CreatedAt int64  `json:"created_at"`
}
