package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// 批注端信封，与旧前端约定保持一致
// 成功: {"message":"Success","data":...}  失败: {"error":"..."}

func ok(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"message": "Success", "data": data})
}

func fail(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

// requestDoctor 请求发起人
// 已登录请求从其持有的令牌反查签发身份，头部声明不覆盖令牌身份；
// 未登录的嵌入式前端退回 X-Doctor 头或查询参数
func requestDoctor(c *gin.Context) string {
	if u := tokenUser(c.GetHeader("Authorization")); u != "" {
		return u
	}
	if d := c.GetHeader("X-Doctor"); d != "" {
		return d
	}
	return c.Query("doctor")
}
