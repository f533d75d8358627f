package handler

import (
	"Snapfeed/internal/api/dto"
	"Snapfeed/internal/pkg/response"
	"Snapfeed/internal/service"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postSvc service.PostService
}

func NewPostHandler(postSvc service.PostService) *PostHandler {
	return &PostHandler{
		postSvc: postSvc,
	}
}

// Upload 接收 multipart 上传并创建帖子
func (s *PostHandler) Upload(c *gin.Context) {
	userID := c.GetString("user_id")

	file, err := c.FormFile("file")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	caption := c.PostForm("caption")

	reader, err := file.Open()
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	// reader 的关闭由上传流程负责，保证所有退出路径都释放

	contentType := file.Header.Get("Content-Type")

	post, err := s.postSvc.CreatePost(c.Request.Context(), userID, caption, reader, file.Filename, contentType)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, post)
}

// Feed 按创建时间倒序返回全部帖子
func (s *PostHandler) Feed(c *gin.Context) {
	posts, err := s.postSvc.ListFeed(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.FeedDTO{Posts: posts})
}

// LegacyPosts 旧版接口，以 id 为键返回帖子映射。已被 /feed 取代
func (s *PostHandler) LegacyPosts(c *gin.Context) {
	posts, err := s.postSvc.ListFeed(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	out := make(map[string]*dto.PostDTO, len(posts))
	for _, post := range posts {
		out[post.ID] = post
	}

	response.Success(c, out)
}

// Delete 删除帖子。id 非法或不存在返回 404。
// 基础流程不校验帖子归属，参见 DESIGN.md 中的授权缺口说明
func (s *PostHandler) Delete(c *gin.Context) {
	userID := c.GetString("user_id")
	postID := c.Param("post_id")

	if err := s.postSvc.DeletePost(c.Request.Context(), userID, postID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{
		"success": true,
		"message": "帖子已删除",
	})
}
