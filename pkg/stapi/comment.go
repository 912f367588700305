package stapi

import (
	"context"
	"net/url"
)

// AddCommentInput 新增批注
type AddCommentInput struct {
	Session     string  `json:"session"`
	VideoTitle  string  `json:"video_title"`
	Timestamp   float64 `json:"timestamp"`
	CommentText string  `json:"comment_text"`
	Duration    int     `json:"duration,omitempty"`
	CommentType string  `json:"comment_type,omitempty"`
}

// UpdateCommentInput 修改批注，文本与时长是两条独立路径
type UpdateCommentInput struct {
	CommentText *string `json:"comment_text,omitempty"`
	Duration    *int    `json:"duration,omitempty"`
}

// AddComment 新增批注
func (e *Engine) AddComment(ctx context.Context, in *AddCommentInput) error {
	return e.post(ctx, "/api/comments", in, nil)
}

// UpdateCommentText 修改批注文本
func (e *Engine) UpdateCommentText(ctx context.Context, name, text string) error {
	return e.put(ctx, "/api/comments/"+url.PathEscape(name), &UpdateCommentInput{CommentText: &text}, nil)
}

// UpdateCommentDuration 修改批注显示时长
func (e *Engine) UpdateCommentDuration(ctx context.Context, name string, duration int) error {
	return e.put(ctx, "/api/comments/"+url.PathEscape(name)+"/duration", &UpdateCommentInput{Duration: &duration}, nil)
}

// DeleteComment 删除批注
func (e *Engine) DeleteComment(ctx context.Context, name string) error {
	return e.delete(ctx, "/api/comments/"+url.PathEscape(name))
}
