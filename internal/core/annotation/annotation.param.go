package annotation

import (
	"github.com/ixugo/goddd/pkg/web"
)

type FindCommentsInput struct {
	web.PagerFilter
	SessionID  string `form:"session"`
	VideoTitle string `form:"video_title"`
	Doctor     string `form:"doctor"`
}

type AddCommentInput struct {
	SessionID   string  `json:"session" binding:"required"`
	VideoTitle  string  `json:"video_title" binding:"required"`
	Timestamp   float64 `json:"timestamp"`
	Duration    *int    `json:"duration"`
	CommentType string  `json:"comment_type"`
	CommentText string  `json:"comment_text"`
}

// EditCommentInput 修改批注文本与类型
// 展示时长走独立的 EditCommentDuration，两者互不影响
type EditCommentInput struct {
	CommentText *string `json:"comment_text"`
	CommentType *string `json:"comment_type"`
}

type EditDurationInput struct {
	Duration int `json:"duration" binding:"required"`
}

// AddEvaluationInput 结构化评价，编码为带标记的批注文本落库
type AddEvaluationInput struct {
	SessionID  string     `json:"session" binding:"required"`
	VideoTitle string     `json:"video_title" binding:"required"`
	Timestamp  float64    `json:"timestamp"`
	Evaluation Evaluation `json:"evaluation"`
}
