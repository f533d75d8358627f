package consts

const (
	// MediaPendingKey 已上传到远端但尚未被帖子确认的对象
	MediaPendingKey = "media:pending"
	// TokenRevokedKey 已注销 Token 的签名黑名单前缀
	TokenRevokedKey = "auth:revoked:"
)
