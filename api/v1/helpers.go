package v1

import (
	"net/http"
	"strconv"

	"oolongblog/config"
	"oolongblog/internal/auth"

	"github.com/gin-gonic/gin"
)

// parseID 解析路径里的 :id，非法时直接响应 400
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的ID"})
		return 0, false
	}
	return uint(id), true
}

// normalizePage 补默认值并夹紧每页条数
func normalizePage(page, pageSize, defaultSize, maxSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultSize
	}
	if pageSize > maxSize {
		pageSize = maxSize
	}
	return page, pageSize
}

// setTokenCookie 把令牌写进 httpOnly cookie，release 模式下带 Secure。
// 令牌同时在响应体里返回，程序化调用方走 Bearer 头。
func setTokenCookie(c *gin.Context, token, role string) {
	c.SetCookie("token", token, auth.TokenMaxAge(role), "/", "", config.IsRelease(), true)
}

// clearTokenCookie 登出只清 cookie，令牌本身到期前仍然有效
func clearTokenCookie(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", config.IsRelease(), true)
}
