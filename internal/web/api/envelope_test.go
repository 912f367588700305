package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testRequestContext(target string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c
}

func TestRequestDoctorPrefersIssuedToken(t *testing.T) {
	issuedTokens.Set("tok123", "dr.wang", tokenTTL)

	c := testRequestContext("/api/comments")
	c.Request.Header.Set("Authorization", "Bearer tok123")
	// 持令牌时头部声明的其他身份不生效
	c.Request.Header.Set("X-Doctor", "dr.li")

	assert.Equal(t, "dr.wang", requestDoctor(c))
}

func TestRequestDoctorUnknownTokenFallsBack(t *testing.T) {
	c := testRequestContext("/api/comments")
	c.Request.Header.Set("Authorization", "Bearer expired-or-forged")
	c.Request.Header.Set("X-Doctor", "dr.li")

	assert.Equal(t, "dr.li", requestDoctor(c))
}

func TestRequestDoctorHeaderAndQuery(t *testing.T) {
	c := testRequestContext("/api/comments?doctor=dr.zhao")
	assert.Equal(t, "dr.zhao", requestDoctor(c))

	c = testRequestContext("/api/comments?doctor=dr.zhao")
	c.Request.Header.Set("X-Doctor", "dr.qian")
	assert.Equal(t, "dr.qian", requestDoctor(c))
}
