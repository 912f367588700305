package annotation

import (
	"strings"

	"github.com/ixugo/goddd/pkg/orm"
)

// 批注类型
const (
	TypeNeutral  = "neutral"
	TypePositive = "positive"
	TypeWarning  = "warning"
	TypeCritical = "critical"
)

const (
	// DefaultDuration 批注默认展示时长(秒)
	DefaultDuration = 30
	MinDuration     = 1
	MaxDuration     = 600
)

// EvaluationMarker 结构化评价批注的文本前缀，时间轴据此区分普通批注与评价
const EvaluationMarker = "[EVALUATION]"

// Comment 时间码批注，挂在会话内某个视频的时间点上
// video_title 弱引用视频，视频删除后产生的悬挂批注由查询侧容忍
type Comment struct {
	ID          string   `gorm:"primaryKey" json:"name"`
	SessionID   string   `gorm:"column:session_id;index" json:"session"`
	Doctor      string   `gorm:"column:doctor" json:"doctor"`
	VideoTitle  string   `gorm:"column:video_title" json:"video_title"`
	Timestamp   float64  `gorm:"column:timestamp" json:"timestamp"`
	Duration    int      `gorm:"column:duration" json:"duration"`
	CommentType string   `gorm:"column:comment_type" json:"comment_type"`
	CommentText string   `gorm:"column:comment_text" json:"comment_text"`
	CreatedAt   orm.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   orm.Time `gorm:"column:updated_at" json:"updated_at"`

	DoctorName string `gorm:"-" json:"doctor_name,omitempty"`
}

func (*Comment) TableName() string {
	return "video_comments"
}

// IsEvaluation 是否为结构化评价批注
func (c *Comment) IsEvaluation() bool {
	return strings.HasPrefix(c.CommentText, EvaluationMarker)
}

func isValidType(t string) bool {
	switch t {
	case TypeNeutral, TypePositive, TypeWarning, TypeCritical:
		return true
	}
	return false
}

// clampDuration 展示时长越界时回落到默认值，与旧版行为保持一致
func clampDuration(d int) int {
	if d < MinDuration || d > MaxDuration {
		return DefaultDuration
	}
	return d
}
