package stapi

import (
	"context"
	"net/url"
	"strconv"
)

// Session 会话
type Session struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// Video 会话视频
type Video struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	VideoFile   string  `json:"video_file"`
	Duration    float64 `json:"duration"`
}

// Comment 时间码批注
type Comment struct {
	Name        string  `json:"name"`
	Doctor      string  `json:"doctor"`
	DoctorName  string  `json:"doctor_name"`
	VideoTitle  string  `json:"video_title"`
	Timestamp   float64 `json:"timestamp"`
	Duration    int     `json:"duration"`
	CommentType string  `json:"comment_type"`
	CommentText string  `json:"comment_text"`
	CreatedAt   string  `json:"created_at"`
}

// SessionDetail 会话详情聚合
type SessionDetail struct {
	Session  Session    `json:"session"`
	Videos   []*Video   `json:"videos"`
	Comments []*Comment `json:"comments"`
}

// FindSessionsOutput 会话分页
type FindSessionsOutput struct {
	Items []*Session `json:"items"`
	Total int64      `json:"total"`
}

// FindSessions 按状态过滤查询会话
func (e *Engine) FindSessions(ctx context.Context, status string, page, size int) (*FindSessionsOutput, error) {
	q := url.Values{}
	if status != "" {
		q.Set("status", status)
	}
	if page <= 0 {
		page = 1
	}
	if size <= 0 {
		size = 20
	}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))

	var out FindSessionsOutput
	if err := e.get(ctx, "/api/sessions?"+q.Encode(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetSessionDetails 拉取会话详情聚合
func (e *Engine) GetSessionDetails(ctx context.Context, session string) (*SessionDetail, error) {
	var out SessionDetail
	if err := e.get(ctx, "/api/sessions/"+url.PathEscape(session)+"/details", &out); err != nil {
		return nil, err
	}
	return &out, nil
}
