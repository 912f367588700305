package api

import (
	"github.com/gin-gonic/gin"
	"github.com/surgtrain/scrub/internal/core/annotation"
)

type CommentAPI struct {
	annotationCore annotation.Core
}

func NewCommentAPI(a annotation.Core) CommentAPI {
	return CommentAPI{annotationCore: a}
}

func registerComment(r gin.IRouter, api CommentAPI, auth gin.HandlerFunc) {
	group := r.Group("/api/comments")
	{
		group.GET("", api.findComments)
		group.POST("", api.addComment)
		group.PUT("/:id", api.editComment)
		group.PUT("/:id/duration", api.editCommentDuration)
		group.DELETE("/:id", api.delComment)
	}

	r.POST("/api/evaluations", api.addEvaluation)

	// 管理端走凭据校验，可以修改任何人的批注
	admin := r.Group("/api/admin/comments", auth)
	{
		admin.PUT("/:id", api.adminEditComment)
		admin.DELETE("/:id", api.adminDelComment)
	}
}

func (api CommentAPI) findComments(c *gin.Context) {
	var in annotation.FindCommentsInput
	if err := c.ShouldBindQuery(&in); err != nil {
		fail(c, err)
		return
	}
	items, total, err := api.annotationCore.FindComments(c.Request.Context(), &in)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, gin.H{"items": items, "total": total})
}

func (api CommentAPI) addComment(c *gin.Context) {
	var in annotation.AddCommentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, err)
		return
	}
	out, err := api.annotationCore.AddComment(c.Request.Context(), &in, requestDoctor(c))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, out)
}

func (api CommentAPI) editComment(c *gin.Context) {
	api.doEditComment(c, false)
}

func (api CommentAPI) adminEditComment(c *gin.Context) {
	api.doEditComment(c, true)
}

func (api CommentAPI) doEditComment(c *gin.Context, isAdmin bool) {
	var in annotation.EditCommentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, err)
		return
	}
	out, err := api.annotationCore.EditComment(c.Request.Context(), &in, c.Param("id"), requestDoctor(c), isAdmin)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, out)
}

// editCommentDuration 展示时长独立修改，不触碰批注文本
func (api CommentAPI) editCommentDuration(c *gin.Context) {
	var in annotation.EditDurationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, err)
		return
	}
	out, err := api.annotationCore.EditCommentDuration(c.Request.Context(), c.Param("id"), in.Duration, requestDoctor(c), false)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, out)
}

func (api CommentAPI) delComment(c *gin.Context) {
	out, err := api.annotationCore.DelComment(c.Request.Context(), c.Param("id"), requestDoctor(c), false)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, out)
}

func (api CommentAPI) adminDelComment(c *gin.Context) {
	out, err := api.annotationCore.DelComment(c.Request.Context(), c.Param("id"), requestDoctor(c), true)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, out)
}

func (api CommentAPI) addEvaluation(c *gin.Context) {
	var in annotation.AddEvaluationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, err)
		return
	}
	out, err := api.annotationCore.AddEvaluation(c.Request.Context(), &in, requestDoctor(c))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, out)
}
