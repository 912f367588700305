package session

import (
	"github.com/ixugo/goddd/pkg/orm"
)

// 会话状态
const (
	StatusActive    = "Active"
	StatusPending   = "Pending"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
)

// Session 训练会话，聚合若干手术视频
// 对外序列化沿用批注的 name 约定作为主键字段
type Session struct {
	ID          string   `gorm:"primaryKey" json:"name"`
	Title       string   `gorm:"column:title" json:"title"`
	Description string   `gorm:"column:description" json:"description"`
	SessionDate orm.Time `gorm:"column:session_date" json:"session_date"`
	Status      string   `gorm:"column:status" json:"status"`
	CreatedAt   orm.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   orm.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (*Session) TableName() string {
	return "sessions"
}

// Video 会话内的训练视频
// 标题在会话内唯一，批注通过 (session_id, video_title) 关联视频
type Video struct {
	ID          string   `gorm:"primaryKey" json:"id"`
	SessionID   string   `gorm:"column:session_id;uniqueIndex:idx_session_video" json:"session_id"`
	Title       string   `gorm:"column:title;uniqueIndex:idx_session_video" json:"title"`
	Description string   `gorm:"column:description" json:"description"`
	VideoFile   string   `gorm:"column:video_file" json:"video_file"`
	Duration    float64  `gorm:"column:duration" json:"duration"` // 秒，媒体元数据加载后由客户端上报，只写一次
	SortNo      int      `gorm:"column:sort_no" json:"sort_no"`
	CreatedAt   orm.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   orm.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (*Video) TableName() string {
	return "session_videos"
}

// Assignment 会话分配记录，管理员将会话指派给医生
type Assignment struct {
	ID         string   `gorm:"primaryKey" json:"id"`
	SessionID  string   `gorm:"column:session_id;uniqueIndex:idx_session_doctor" json:"session_id"`
	Doctor     string   `gorm:"column:doctor;uniqueIndex:idx_session_doctor" json:"doctor"`
	AssignedBy string   `gorm:"column:assigned_by" json:"assigned_by"`
	CreatedAt  orm.Time `gorm:"column:created_at" json:"created_at"`
}

func (*Assignment) TableName() string {
	return "session_assignments"
}
