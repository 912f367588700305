package annotation

import (
	"context"
	"log/slog"
	"strings"

	"github.com/ixugo/goddd/pkg/orm"
	"github.com/ixugo/goddd/pkg/reason"
	"github.com/surgtrain/scrub/internal/core/bz"
)

// FindComments 查询批注，按时间戳升序
func (c Core) FindComments(ctx context.Context, in *FindCommentsInput) ([]*Comment, int64, error) {
	if in.SessionID == "" {
		return nil, 0, reason.ErrBadRequest.Withf("session is required")
	}
	query := orm.NewQuery(3).OrderBy("timestamp ASC")
	query.Where("session_id = ?", in.SessionID)
	if in.VideoTitle != "" {
		query.Where("video_title = ?", in.VideoTitle)
	}
	if in.Doctor != "" {
		query.Where("doctor = ?", in.Doctor)
	}

	items := make([]*Comment, 0, in.Limit())
	total, err := c.store.Comment().Find(ctx, &items, in, query.Encode()...)
	if err != nil {
		return nil, 0, reason.ErrDB.Withf(`Find in[%+v] err[%s]`, in, err.Error())
	}
	c.fillDoctorNames(ctx, items)
	return items, total, nil
}

// GetComment Query a single object
func (c Core) GetComment(ctx context.Context, id string) (*Comment, error) {
	var out Comment
	if err := c.store.Comment().Get(ctx, &out, orm.Where("id=?", id)); err != nil {
		if orm.IsErrRecordNotFound(err) {
			return nil, reason.ErrNotFound.Withf(`Get id[%s]`, id)
		}
		return nil, reason.ErrDB.Withf(`Get id[%s] err[%s]`, id, err.Error())
	}
	return &out, nil
}

// AddComment 新增批注
// 时间戳负数拒绝，超出视频时长时截断到时长；类型缺省时按文本关键词归类
func (c Core) AddComment(ctx context.Context, in *AddCommentInput, doctor string) (*Comment, error) {
	text := strings.TrimSpace(in.CommentText)
	if text == "" {
		return nil, reason.ErrBadRequest.Withf("批注内容不能为空")
	}
	if in.Timestamp < 0 {
		return nil, reason.ErrBadRequest.Withf("时间戳必须为非负数")
	}

	timestamp := in.Timestamp
	if c.videos != nil {
		if d, ok := c.videos.VideoDuration(ctx, in.SessionID, in.VideoTitle); !ok {
			// 视频不存在也允许落库，悬挂批注由查询侧容忍
			slog.WarnContext(ctx, "批注指向未知视频", "session", in.SessionID, "video_title", in.VideoTitle)
		} else if d > 0 && timestamp > d {
			timestamp = d
		}
	}

	duration := DefaultDuration
	if in.Duration != nil {
		duration = clampDuration(*in.Duration)
	}

	commentType := in.CommentType
	if commentType == "" {
		commentType = Classify(text).CommentType()
	} else if !isValidType(commentType) {
		commentType = TypeNeutral
	}

	out := Comment{
		ID:          c.uni.UniqueID(bz.IDPrefixComment),
		SessionID:   in.SessionID,
		Doctor:      doctor,
		VideoTitle:  in.VideoTitle,
		Timestamp:   timestamp,
		Duration:    duration,
		CommentType: commentType,
		CommentText: in.CommentText,
		CreatedAt:   orm.Now(),
		UpdatedAt:   orm.Now(),
	}
	if err := c.store.Comment().Add(ctx, &out); err != nil {
		return nil, reason.ErrDB.Withf(`Add err[%s]`, err.Error())
	}
	c.fillDoctorNames(ctx, []*Comment{&out})
	return &out, nil
}

// AddEvaluation 新增结构化评价，编码为带 [EVALUATION] 标记的批注文本
func (c Core) AddEvaluation(ctx context.Context, in *AddEvaluationInput, doctor string) (*Comment, error) {
	text, err := in.Evaluation.Encode(in.SessionID, in.Timestamp)
	if err != nil {
		return nil, err
	}
	return c.AddComment(ctx, &AddCommentInput{
		SessionID:   in.SessionID,
		VideoTitle:  in.VideoTitle,
		Timestamp:   in.Timestamp,
		CommentText: text,
		CommentType: TypeNeutral,
	}, doctor)
}

// canModify 仅作者本人或管理员可修改/删除批注
func canModify(comment *Comment, requester string, isAdmin bool) bool {
	return isAdmin || comment.Doctor == requester
}

// EditComment 修改批注文本/类型，不触碰展示时长
func (c Core) EditComment(ctx context.Context, in *EditCommentInput, id, requester string, isAdmin bool) (*Comment, error) {
	if in.CommentText == nil && in.CommentType == nil {
		return nil, reason.ErrBadRequest.Withf("没有需要修改的内容")
	}
	if in.CommentText != nil && strings.TrimSpace(*in.CommentText) == "" {
		return nil, reason.ErrBadRequest.Withf("批注内容不能为空")
	}

	out, err := c.GetComment(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canModify(out, requester, isAdmin) {
		return nil, reason.ErrBadRequest.SetMsg("只能修改自己的批注")
	}

	if err := c.store.Comment().Edit(ctx, out, func(b *Comment) {
		if in.CommentText != nil {
			b.CommentText = *in.CommentText
		}
		if in.CommentType != nil && isValidType(*in.CommentType) {
			b.CommentType = *in.CommentType
		}
		b.UpdatedAt = orm.Now()
	}, orm.Where("id=?", id)); err != nil {
		return nil, reason.ErrDB.Withf(`Edit id[%s] err[%s]`, id, err.Error())
	}
	return out, nil
}

// EditCommentDuration 修改批注展示时长，与文本修改互相独立
func (c Core) EditCommentDuration(ctx context.Context, id string, duration int, requester string, isAdmin bool) (*Comment, error) {
	out, err := c.GetComment(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canModify(out, requester, isAdmin) {
		return nil, reason.ErrBadRequest.SetMsg("只能修改自己的批注")
	}

	if err := c.store.Comment().Edit(ctx, out, func(b *Comment) {
		b.Duration = clampDuration(duration)
		b.UpdatedAt = orm.Now()
	}, orm.Where("id=?", id)); err != nil {
		return nil, reason.ErrDB.Withf(`Edit duration id[%s] err[%s]`, id, err.Error())
	}
	return out, nil
}

// DelComment 删除批注
func (c Core) DelComment(ctx context.Context, id, requester string, isAdmin bool) (*Comment, error) {
	out, err := c.GetComment(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canModify(out, requester, isAdmin) {
		return nil, reason.ErrBadRequest.SetMsg("只能删除自己的批注")
	}
	if err := c.store.Comment().Del(ctx, out, orm.Where("id=?", id)); err != nil {
		return nil, reason.ErrDB.Withf(`Del id[%s] err[%s]`, id, err.Error())
	}
	return out, nil
}
