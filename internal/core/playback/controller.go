package playback

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/ixugo/goddd/pkg/conc"
	"github.com/ixugo/goddd/pkg/reason"
)

// AddCommentInput 新增批注请求
type AddCommentInput struct {
	Session     string  `json:"session"`
	VideoTitle  string  `json:"video_title"`
	Timestamp   float64 `json:"timestamp"`
	CommentText string  `json:"comment_text"`
	Duration    int     `json:"duration,omitempty"`
	CommentType string  `json:"comment_type,omitempty"`
}

// SessionClient 会话批注远端接口，由 HTTP 客户端实现
type SessionClient interface {
	GetSessionDetails(ctx context.Context, session string) (*SessionDetail, error)
	AddComment(ctx context.Context, in *AddCommentInput) error
	UpdateCommentText(ctx context.Context, name, text string) error
	UpdateCommentDuration(ctx context.Context, name string, duration int) error
	DeleteComment(ctx context.Context, name string) error
}

// Controller 批注生命周期编排
// 每次变更走同一套纪律：暂停播放、提交、整体重取、恢复播放位置。
// 重取是全量聚合加载，不恢复位置会把进度打回媒体面漂移后的值
type Controller struct {
	api     SessionClient
	store   *Store
	cfg     Config
	session string

	mu     sync.RWMutex
	detail *SessionDetail

	// 同一批注同时只允许一个在途变更，update 与 delete 互斥
	inflight conc.Map[string, struct{}]
}

func NewController(api SessionClient, store *Store, cfg Config, session string) *Controller {
	cfg.setDefaults()
	return &Controller{
		api:     api,
		store:   store,
		cfg:     cfg,
		session: session,
	}
}

// Load 首次加载会话聚合，并为每个视频建立播放状态条目
func (c *Controller) Load(ctx context.Context) error {
	return c.refresh(ctx)
}

// Detail 当前聚合快照
func (c *Controller) Detail() *SessionDetail {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.detail
}

// Comments 当前批注列表副本
func (c *Controller) Comments() []*Comment {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.detail == nil {
		return nil
	}
	out := make([]*Comment, len(c.detail.Comments))
	copy(out, c.detail.Comments)
	return out
}

// Videos 当前视频列表副本
func (c *Controller) Videos() []*Video {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.detail == nil {
		return nil
	}
	out := make([]*Video, len(c.detail.Videos))
	copy(out, c.detail.Videos)
	return out
}

// Add 在指定视频的时间点新增批注
// 草稿为空时直接跳过，不发请求；失败时草稿与播放位置原样保留
func (c *Controller) Add(ctx context.Context, videoTitle string, timestamp float64, text string, duration int, commentType string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	key := "add:" + videoTitle
	if !c.acquire(key) {
		return reason.ErrBadRequest.SetMsg("上一次提交尚未完成")
	}
	defer c.release(key)

	pos := c.store.Snapshot(videoTitle).CurrentTime
	c.store.SetPlaying(videoTitle, false)

	// 提交前钳制时间点，越界值不交给服务端拒绝
	if err := c.api.AddComment(ctx, &AddCommentInput{
		Session:     c.session,
		VideoTitle:  videoTitle,
		Timestamp:   c.store.Clamp(videoTitle, timestamp),
		CommentText: text,
		Duration:    duration,
		CommentType: commentType,
	}); err != nil {
		return err
	}

	c.store.SetDraft(videoTitle, "")
	err := c.refresh(ctx)
	c.store.SetTime(videoTitle, pos)
	return err
}

// UpdateText 修改批注文本
func (c *Controller) UpdateText(ctx context.Context, commentName, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return reason.ErrBadRequest.SetMsg("批注内容不能为空")
	}
	return c.mutate(ctx, commentName, func(ctx context.Context) error {
		return c.api.UpdateCommentText(ctx, commentName, text)
	})
}

// UpdateDuration 单独修改批注时长，不触碰文本
func (c *Controller) UpdateDuration(ctx context.Context, commentName string, duration int) error {
	return c.mutate(ctx, commentName, func(ctx context.Context) error {
		return c.api.UpdateCommentDuration(ctx, commentName, duration)
	})
}

// Remove 删除批注，确认动作由调用方负责
func (c *Controller) Remove(ctx context.Context, commentName string) error {
	return c.mutate(ctx, commentName, func(ctx context.Context) error {
		return c.api.DeleteComment(ctx, commentName)
	})
}

// mutate 针对已有批注的变更骨架：定位视频、占用在途标记、
// 暂停、提交、重取、恢复位置
func (c *Controller) mutate(ctx context.Context, commentName string, fn func(context.Context) error) error {
	videoTitle, ok := c.commentVideo(commentName)
	if !ok {
		return reason.ErrNotFound.SetMsg("批注不存在")
	}

	if !c.acquire(commentName) {
		return reason.ErrBadRequest.SetMsg("该批注的上一次操作尚未完成")
	}
	defer c.release(commentName)

	pos := c.store.Snapshot(videoTitle).CurrentTime
	c.store.SetPlaying(videoTitle, false)

	if err := fn(ctx); err != nil {
		return err
	}

	err := c.refresh(ctx)
	c.store.SetTime(videoTitle, pos)
	return err
}

func (c *Controller) commentVideo(commentName string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.detail == nil {
		return "", false
	}
	for _, cm := range c.detail.Comments {
		if cm.Name == commentName {
			return cm.VideoTitle, true
		}
	}
	return "", false
}

func (c *Controller) acquire(key string) bool {
	_, loaded := c.inflight.LoadOrStore(key, struct{}{})
	return !loaded
}

func (c *Controller) release(key string) {
	c.inflight.Delete(key)
}

// refresh 重取会话聚合
// 读操作幂等，带退避的有限重试；变更操作从不自动重试
func (c *Controller) refresh(ctx context.Context) error {
	var detail *SessionDetail
	var err error
	backoff := c.cfg.RefreshBackoff
	for i := 0; i < c.cfg.RefreshRetries; i++ {
		detail, err = c.api.GetSessionDetails(ctx, c.session)
		if err == nil {
			break
		}
		slog.WarnContext(ctx, "会话聚合刷新失败", "session", c.session, "attempt", i+1, "err", err)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
	}
	if err != nil {
		return reason.ErrServer.Withf("err[%s]", err.Error())
	}

	c.mu.Lock()
	c.detail = detail
	c.mu.Unlock()

	// 每个视频恰好一个状态条目，时长只写一次
	for _, v := range detail.Videos {
		c.store.Touch(v.Title)
		if v.Duration > 0 {
			c.store.SetDuration(v.Title, v.Duration)
		}
	}
	return nil
}
