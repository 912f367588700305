package session

import (
	"github.com/ixugo/goddd/pkg/orm"
	"github.com/ixugo/goddd/pkg/web"
)

type FindSessionsInput struct {
	web.PagerFilter
	Status string `form:"status"` // Active/Pending/Completed/Cancelled
	Doctor string `form:"doctor"` // 仅查询分配给该医生的会话
}

type AddSessionInput struct {
	Title       string          `json:"title" binding:"required"`
	Description string          `json:"description"`
	SessionDate orm.Time        `json:"session_date"`
	Status      string          `json:"status"`
	Videos      []AddVideoInput `json:"videos"`
}

type EditSessionInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

type AddVideoInput struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	VideoFile   string  `json:"video_file"`
	Duration    float64 `json:"duration"`
	SortNo      int     `json:"sort_no"`
}

type FindAssignmentsInput struct {
	web.PagerFilter
	SessionID string `form:"session_id"`
	Doctor    string `form:"doctor"`
}

type AssignSessionInput struct {
	SessionID string `json:"session_id" binding:"required"`
	Doctor    string `json:"doctor" binding:"required"`
}

// Details 会话详情聚合，视频列表随会话一次性返回
type Details struct {
	Session *Session `json:"session"`
	Videos  []*Video `json:"videos"`
}
