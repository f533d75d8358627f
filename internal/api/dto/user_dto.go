package dto

// RegisterDTO 注册请求
type RegisterDTO struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required" validate:"min=6,max=64"`
}

// CredentialDTO 登录凭据
type CredentialDTO struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserDTO 用户信息
type UserDTO struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	IsActive    bool   `json:"is_active"`
	IsVerified  bool   `json:"is_verified"`
	IsSuperuser bool   `json:"is_superuser"`
	CreatedAt   string `json:"created_at"`
}
