package adapter

import (
	"context"

	"github.com/surgtrain/scrub/internal/core/playback"
	"github.com/surgtrain/scrub/pkg/stapi"
)

var _ playback.SessionClient = (*StapiAdapter)(nil)

// StapiAdapter 实现 playback.SessionClient 接口
// 把 stapi.Engine 的远端调用适配给播放端领域使用
type StapiAdapter struct {
	engine stapi.Engine
}

func NewStapiAdapter(engine stapi.Engine) playback.SessionClient {
	return &StapiAdapter{engine: engine}
}

func (a *StapiAdapter) GetSessionDetails(ctx context.Context, session string) (*playback.SessionDetail, error) {
	out, err := a.engine.GetSessionDetails(ctx, session)
	if err != nil {
		return nil, err
	}

	detail := playback.SessionDetail{
		Session: playback.SessionInfo{
			Name:        out.Session.Name,
			Title:       out.Session.Title,
			Description: out.Session.Description,
			Status:      out.Session.Status,
		},
		Videos:   make([]*playback.Video, 0, len(out.Videos)),
		Comments: make([]*playback.Comment, 0, len(out.Comments)),
	}
	for _, v := range out.Videos {
		detail.Videos = append(detail.Videos, &playback.Video{
			Title:       v.Title,
			Description: v.Description,
			VideoFile:   v.VideoFile,
			Duration:    v.Duration,
		})
	}
	for _, c := range out.Comments {
		detail.Comments = append(detail.Comments, &playback.Comment{
			Name:        c.Name,
			Doctor:      c.Doctor,
			DoctorName:  c.DoctorName,
			VideoTitle:  c.VideoTitle,
			Timestamp:   c.Timestamp,
			Duration:    c.Duration,
			CommentType: c.CommentType,
			CommentText: c.CommentText,
			CreatedAt:   c.CreatedAt,
		})
	}
	return &detail, nil
}

func (a *StapiAdapter) AddComment(ctx context.Context, in *playback.AddCommentInput) error {
	return a.engine.AddComment(ctx, &stapi.AddCommentInput{
		Session:     in.Session,
		VideoTitle:  in.VideoTitle,
		Timestamp:   in.Timestamp,
		CommentText: in.CommentText,
		Duration:    in.Duration,
		CommentType: in.CommentType,
	})
}

func (a *StapiAdapter) UpdateCommentText(ctx context.Context, name, text string) error {
	return a.engine.UpdateCommentText(ctx, name, text)
}

func (a *StapiAdapter) UpdateCommentDuration(ctx context.Context, name string, duration int) error {
	return a.engine.UpdateCommentDuration(ctx, name, duration)
}

func (a *StapiAdapter) DeleteComment(ctx context.Context, name string) error {
	return a.engine.DeleteComment(ctx, name)
}
