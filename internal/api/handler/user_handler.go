package handler

import (
	"Snapfeed/internal/api/dto"
	"Snapfeed/internal/pkg/response"
	"Snapfeed/internal/pkg/util"
	"Snapfeed/internal/service"
	"strings"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userSvc service.UserService
}

func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{
		userSvc: userSvc,
	}
}

func (s *UserHandler) Register(c *gin.Context) {
	var registerDTO dto.RegisterDTO
	if err := c.ShouldBind(&registerDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&registerDTO); err != nil {
		response.Error(c, err)
		return
	}
	user, err := s.userSvc.Register(c.Request.Context(), &registerDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, user)
}

func (s *UserHandler) Login(c *gin.Context) {
	var loginDTO dto.CredentialDTO
	if err := c.ShouldBind(&loginDTO); err != nil {
		response.Error(c, err)
		return
	}
	token, err := s.userSvc.Login(c.Request.Context(), &loginDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, map[string]string{
		"token": token,
	})
}

func (s *UserHandler) Logout(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if err := s.userSvc.Logout(c.Request.Context(), token); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *UserHandler) Me(c *gin.Context) {
	userID := c.GetString("user_id")
	user, err := s.userSvc.GetUserInfo(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, user)
}
