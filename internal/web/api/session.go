package api

import (
	"github.com/gin-gonic/gin"
	"github.com/ixugo/goddd/pkg/web"
	"github.com/surgtrain/scrub/internal/core/annotation"
	"github.com/surgtrain/scrub/internal/core/doctor"
	"github.com/surgtrain/scrub/internal/core/session"
)

type SessionAPI struct {
	sessionCore    session.Core
	annotationCore annotation.Core
	doctorCore     doctor.Core
}

func NewSessionAPI(s session.Core, a annotation.Core, d doctor.Core) SessionAPI {
	return SessionAPI{sessionCore: s, annotationCore: a, doctorCore: d}
}

func registerSession(r gin.IRouter, api SessionAPI, auth gin.HandlerFunc) {
	group := r.Group("/api/sessions")
	{
		group.GET("", api.findSessions)
		group.GET("/:id", api.getSession)
		group.GET("/:id/details", api.getDetails)
		group.GET("/:id/playlist.m3u8", api.getPlaylist)
		// 播放端媒体元数据加载后上报时长，无需管理员权限
		group.PUT("/:id/videos/duration", api.reportVideoDuration)

		group.POST("", auth, api.addSession)
		group.PUT("/:id", auth, api.editSession)
		group.DELETE("/:id", auth, api.delSession)
		group.POST("/:id/videos", auth, api.addVideo)
	}

	ag := r.Group("/api/assignments")
	{
		ag.GET("", api.findAssignments)
		ag.POST("", auth, api.assignSession)
		ag.DELETE("/:id", auth, api.delAssignment)
	}

	r.GET("/api/doctors", auth, api.findDoctors)
}

func (api SessionAPI) findSessions(c *gin.Context) {
	var in session.FindSessionsInput
	if err := c.ShouldBindQuery(&in); err != nil {
		fail(c, err)
		return
	}
	items, total, err := api.sessionCore.FindSessions(c.Request.Context(), &in)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, gin.H{"items": items, "total": total})
}

func (api SessionAPI) getSession(c *gin.Context) {
	out, err := api.sessionCore.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, out)
}

// getDetails 会话详情聚合，一次性返回会话、视频与全量批注
// 播放端只发一次请求就能完成初始化
func (api SessionAPI) getDetails(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	details, err := api.sessionCore.GetDetails(ctx, id)
	if err != nil {
		fail(c, err)
		return
	}
	comments, _, err := api.annotationCore.FindComments(ctx, &annotation.FindCommentsInput{
		PagerFilter: web.NewPagerFilterMaxSize(),
		SessionID:   id,
	})
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, gin.H{
		"session":  details.Session,
		"videos":   details.Videos,
		"comments": comments,
	})
}

func (api SessionAPI) addSession(c *gin.Context) {
	var in session.AddSessionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, err)
		return
	}
	out, err := api.sessionCore.AddSession(c.Request.Context(), &in)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, out)
}

func (api SessionAPI) editSession(c *gin.Context) {
	var in session.EditSessionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, err)
		return
	}
	out, err := api.sessionCore.EditSession(c.Request.Context(), &in, c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, out)
}

func (api SessionAPI) delSession(c *gin.Context) {
	out, err := api.sessionCore.DelSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, out)
}

func (api SessionAPI) addVideo(c *gin.Context) {
	var in session.AddVideoInput
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, err)
		return
	}
	out, err := api.sessionCore.AddVideo(c.Request.Context(), c.Param("id"), &in)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, out)
}

type reportVideoDurationInput struct {
	Title    string  `json:"title" binding:"required"`
	Duration float64 `json:"duration" binding:"required"`
}

func (api SessionAPI) reportVideoDuration(c *gin.Context) {
	var in reportVideoDurationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, err)
		return
	}
	out, err := api.sessionCore.EditVideoDuration(c.Request.Context(), c.Param("id"), in.Title, in.Duration)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, out)
}

func (api SessionAPI) findAssignments(c *gin.Context) {
	var in session.FindAssignmentsInput
	if err := c.ShouldBindQuery(&in); err != nil {
		fail(c, err)
		return
	}
	items, total, err := api.sessionCore.FindAssignments(c.Request.Context(), &in)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, gin.H{"items": items, "total": total})
}

func (api SessionAPI) assignSession(c *gin.Context) {
	var in session.AssignSessionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, err)
		return
	}
	out, err := api.sessionCore.AssignSession(c.Request.Context(), &in, requestDoctor(c))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, out)
}

func (api SessionAPI) delAssignment(c *gin.Context) {
	out, err := api.sessionCore.DelAssignment(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, out)
}

func (api SessionAPI) findDoctors(c *gin.Context) {
	var in doctor.FindDoctorsInput
	if err := c.ShouldBindQuery(&in); err != nil {
		fail(c, err)
		return
	}
	items, total, err := api.doctorCore.FindDoctors(c.Request.Context(), &in)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, gin.H{"items": items, "total": total})
}
