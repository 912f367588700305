package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/grafov/m3u8"
	"github.com/surgtrain/scrub/internal/core/session"
)

// getPlaylist 生成会话视频的 m3u8 播放列表
// 会话内多段术野录像按顺序串成 VOD，供 HLS 播放器连续回放
// 路径: /api/sessions/:id/playlist.m3u8
func (api SessionAPI) getPlaylist(c *gin.Context) {
	videos, err := api.sessionCore.FindVideos(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	if len(videos) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "会话没有视频"})
		return
	}

	content := generatePlaylist(videos)
	if content == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "生成播放列表失败"})
		return
	}

	c.Header("Content-Type", "application/vnd.apple.mpegurl")
	c.Header("Cache-Control", "no-cache")
	c.String(http.StatusOK, content)
}

// generatePlaylist 根据视频列表生成 m3u8 内容
func generatePlaylist(videos []*session.Video) string {
	count := len(videos)
	if count == 0 {
		return ""
	}

	// winSize=0 表示 VOD，不使用滑动窗口
	pl, err := m3u8.NewMediaPlaylist(0, uint(count))
	if err != nil {
		return ""
	}
	pl.MediaType = m3u8.VOD

	appended := 0
	for _, v := range videos {
		uri := v.VideoFile
		if uri == "" {
			continue
		}
		// 相对路径统一挂到静态视频目录下
		if !strings.HasPrefix(uri, "http") && !strings.HasPrefix(uri, "/") {
			uri = "/static/videos/" + uri
		}
		if err := pl.Append(uri, v.Duration, v.Title); err != nil {
			continue
		}
		appended++
		// 各段录像独立编码，片段间需要 DISCONTINUITY 重置解码器
		// SetDiscontinuity 作用于最近一次 Append 的片段，须在 Append 之后调用
		if appended > 1 {
			_ = pl.SetDiscontinuity()
		}
	}

	pl.Close()
	return pl.Encode().String()
}
