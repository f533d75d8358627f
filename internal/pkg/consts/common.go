package consts

const (
	MimePrefixVideo = "video/"
)

const (
	FileTypeImage = "image"
	FileTypeVideo = "video"
)
