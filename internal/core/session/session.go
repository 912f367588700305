package session

import (
	"context"
	"log/slog"

	"github.com/ixugo/goddd/pkg/orm"
	"github.com/ixugo/goddd/pkg/reason"
	"github.com/ixugo/goddd/pkg/web"
	"github.com/jinzhu/copier"
	"github.com/surgtrain/scrub/internal/core/bz"
	"gorm.io/gorm"
)

func isValidStatus(s string) bool {
	switch s {
	case StatusActive, StatusPending, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// FindSessions 分页查询会话，支持状态与医生过滤
// 传入 doctor 时仅返回分配给该医生的会话
func (c Core) FindSessions(ctx context.Context, in *FindSessionsInput) ([]*Session, int64, error) {
	query := orm.NewQuery(2).OrderBy("created_at DESC")
	if in.Status != "" {
		query.Where("status = ?", in.Status)
	}
	if in.Doctor != "" {
		var assignments []*Assignment
		if _, err := c.store.Assignment().Find(ctx, &assignments,
			web.NewPagerFilterMaxSize(),
			orm.Where("doctor = ?", in.Doctor),
		); err != nil {
			return nil, 0, reason.ErrDB.Withf(`Find assignments doctor[%s] err[%s]`, in.Doctor, err.Error())
		}
		ids := make([]string, 0, len(assignments))
		for _, a := range assignments {
			ids = append(ids, a.SessionID)
		}
		if len(ids) == 0 {
			return []*Session{}, 0, nil
		}
		query.Where("id IN ?", ids)
	}

	items := make([]*Session, 0, in.Limit())
	total, err := c.store.Session().Find(ctx, &items, in, query.Encode()...)
	if err != nil {
		return nil, 0, reason.ErrDB.Withf(`Find in[%+v] err[%s]`, in, err.Error())
	}
	return items, total, nil
}

// GetSession Query a single object
func (c Core) GetSession(ctx context.Context, id string) (*Session, error) {
	var out Session
	if err := c.store.Session().Get(ctx, &out, orm.Where("id=?", id)); err != nil {
		if orm.IsErrRecordNotFound(err) {
			return nil, reason.ErrNotFound.Withf(`Get id[%s]`, id)
		}
		return nil, reason.ErrDB.Withf(`Get id[%s] err[%s]`, id, err.Error())
	}
	return &out, nil
}

// GetDetails 获取会话详情聚合，视频按 sort_no 升序
func (c Core) GetDetails(ctx context.Context, id string) (*Details, error) {
	s, err := c.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	videos, err := c.FindVideos(ctx, id)
	if err != nil {
		return nil, err
	}
	return &Details{Session: s, Videos: videos}, nil
}

// FindVideos 查询会话下的全部视频
func (c Core) FindVideos(ctx context.Context, sessionID string) ([]*Video, error) {
	var videos []*Video
	query := orm.NewQuery(1).OrderBy("sort_no ASC, created_at ASC")
	query.Where("session_id = ?", sessionID)
	if _, err := c.store.Video().Find(ctx, &videos, web.NewPagerFilterMaxSize(), query.Encode()...); err != nil {
		return nil, reason.ErrDB.Withf(`Find videos session[%s] err[%s]`, sessionID, err.Error())
	}
	return videos, nil
}

// AddSession 创建会话及其视频，同一事务内完成
func (c Core) AddSession(ctx context.Context, in *AddSessionInput) (*Session, error) {
	status := in.Status
	if status == "" {
		status = StatusActive
	}
	if !isValidStatus(status) {
		return nil, reason.ErrBadRequest.Withf("无效的会话状态 [%s]", status)
	}

	out := Session{
		ID:          c.uni.UniqueID(bz.IDPrefixSession),
		Title:       in.Title,
		Description: in.Description,
		SessionDate: in.SessionDate,
		Status:      status,
		CreatedAt:   orm.Now(),
		UpdatedAt:   orm.Now(),
	}

	videos := make([]*Video, 0, len(in.Videos))
	for i, v := range in.Videos {
		video := Video{
			ID:        c.uni.UniqueID(bz.IDPrefixVideo),
			SessionID: out.ID,
			SortNo:    i,
			CreatedAt: orm.Now(),
			UpdatedAt: orm.Now(),
		}
		if err := copier.Copy(&video, &v); err != nil {
			slog.ErrorContext(ctx, "Copy", "err", err)
		}
		video.SortNo = i
		videos = append(videos, &video)
	}

	if err := c.store.Session().Session(ctx, func(tx *gorm.DB) error {
		if err := tx.Create(&out).Error; err != nil {
			return err
		}
		if len(videos) > 0 {
			return tx.Create(&videos).Error
		}
		return nil
	}); err != nil {
		return nil, reason.ErrDB.Withf(`Add err[%s]`, err.Error())
	}
	return &out, nil
}

// EditSession 修改会话标题/描述/状态
func (c Core) EditSession(ctx context.Context, in *EditSessionInput, id string) (*Session, error) {
	if in.Status != "" && !isValidStatus(in.Status) {
		return nil, reason.ErrBadRequest.Withf("无效的会话状态 [%s]", in.Status)
	}
	var out Session
	if err := c.store.Session().Edit(ctx, &out, func(b *Session) {
		if in.Title != "" {
			b.Title = in.Title
		}
		if in.Description != "" {
			b.Description = in.Description
		}
		if in.Status != "" {
			b.Status = in.Status
		}
		b.UpdatedAt = orm.Now()
	}, orm.Where("id=?", id)); err != nil {
		if orm.IsErrRecordNotFound(err) {
			return nil, reason.ErrNotFound.Withf(`Edit id[%s]`, id)
		}
		return nil, reason.ErrDB.Withf(`Edit id[%s] err[%s]`, id, err.Error())
	}
	return &out, nil
}

// DelSession 删除会话及其视频与分配记录
// 批注不随会话删除，悬挂批注由查询侧过滤容忍
func (c Core) DelSession(ctx context.Context, id string) (*Session, error) {
	s, err := c.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := c.store.Session().Session(ctx,
		func(tx *gorm.DB) error {
			return tx.Where("id=?", id).Delete(&Session{}).Error
		},
		func(tx *gorm.DB) error {
			return tx.Where("session_id=?", id).Delete(&Video{}).Error
		},
		func(tx *gorm.DB) error {
			return tx.Where("session_id=?", id).Delete(&Assignment{}).Error
		},
	); err != nil {
		return nil, reason.ErrDB.Withf(`Del id[%s] err[%s]`, id, err.Error())
	}
	slog.InfoContext(ctx, "会话已删除", "id", id, "title", s.Title)
	return s, nil
}

// AddVideo 向已有会话追加视频
func (c Core) AddVideo(ctx context.Context, sessionID string, in *AddVideoInput) (*Video, error) {
	if _, err := c.GetSession(ctx, sessionID); err != nil {
		return nil, err
	}
	out := Video{
		ID:        c.uni.UniqueID(bz.IDPrefixVideo),
		SessionID: sessionID,
		CreatedAt: orm.Now(),
		UpdatedAt: orm.Now(),
	}
	if err := copier.Copy(&out, in); err != nil {
		slog.ErrorContext(ctx, "Copy", "err", err)
	}
	if err := c.store.Video().Add(ctx, &out); err != nil {
		return nil, reason.ErrDB.Withf(`Add video session[%s] err[%s]`, sessionID, err.Error())
	}
	return &out, nil
}

// EditVideoDuration 上报视频时长
// 时长由媒体元数据加载后上报，只允许从 0 写到具体值一次，重复上报忽略
func (c Core) EditVideoDuration(ctx context.Context, sessionID, title string, duration float64) (*Video, error) {
	if duration <= 0 {
		return nil, reason.ErrBadRequest.Withf("时长必须为正数")
	}
	var out Video
	if err := c.store.Video().Edit(ctx, &out, func(b *Video) {
		if b.Duration > 0 {
			slog.DebugContext(ctx, "视频时长已存在，忽略上报", "session", sessionID, "title", title)
			return
		}
		b.Duration = duration
		b.UpdatedAt = orm.Now()
	}, orm.Where("session_id = ? AND title = ?", sessionID, title)); err != nil {
		if orm.IsErrRecordNotFound(err) {
			return nil, reason.ErrNotFound.Withf(`Edit video session[%s] title[%s]`, sessionID, title)
		}
		return nil, reason.ErrDB.Withf(`Edit video session[%s] title[%s] err[%s]`, sessionID, title, err.Error())
	}
	return &out, nil
}

// VideoDuration 查询视频时长，供批注域校验时间戳范围
func (c Core) VideoDuration(ctx context.Context, sessionID, title string) (float64, bool) {
	var out Video
	if err := c.store.Video().Get(ctx, &out, orm.Where("session_id = ? AND title = ?", sessionID, title)); err != nil {
		return 0, false
	}
	if out.Duration <= 0 {
		return 0, false
	}
	return out.Duration, true
}

// AssignSession 将会话分配给医生，重复分配报错
func (c Core) AssignSession(ctx context.Context, in *AssignSessionInput, assignedBy string) (*Assignment, error) {
	s, err := c.GetSession(ctx, in.SessionID)
	if err != nil {
		return nil, err
	}

	var exist Assignment
	if err := c.store.Assignment().Get(ctx, &exist,
		orm.Where("session_id = ? AND doctor = ?", in.SessionID, in.Doctor),
	); err == nil {
		return nil, reason.ErrBadRequest.Withf("该会话已分配给此医生")
	} else if !orm.IsErrRecordNotFound(err) {
		return nil, reason.ErrDB.Withf(`Get assignment err[%s]`, err.Error())
	}

	out := Assignment{
		ID:         c.uni.UniqueID(bz.IDPrefixAssignment),
		SessionID:  in.SessionID,
		Doctor:     in.Doctor,
		AssignedBy: assignedBy,
		CreatedAt:  orm.Now(),
	}
	if err := c.store.Assignment().Add(ctx, &out); err != nil {
		return nil, reason.ErrDB.Withf(`Add assignment err[%s]`, err.Error())
	}

	if c.notifier != nil {
		c.notifier.AssignmentCreated(ctx, in.Doctor, s.ID, s.Title)
	}
	return &out, nil
}

// FindAssignments 分页查询分配记录
func (c Core) FindAssignments(ctx context.Context, in *FindAssignmentsInput) ([]*Assignment, int64, error) {
	query := orm.NewQuery(2).OrderBy("created_at DESC")
	if in.SessionID != "" {
		query.Where("session_id = ?", in.SessionID)
	}
	if in.Doctor != "" {
		query.Where("doctor = ?", in.Doctor)
	}
	items := make([]*Assignment, 0, in.Limit())
	total, err := c.store.Assignment().Find(ctx, &items, in, query.Encode()...)
	if err != nil {
		return nil, 0, reason.ErrDB.Withf(`Find assignments in[%+v] err[%s]`, in, err.Error())
	}
	return items, total, nil
}

// DelAssignment 取消分配
func (c Core) DelAssignment(ctx context.Context, id string) (*Assignment, error) {
	var out Assignment
	if err := c.store.Assignment().Del(ctx, &out, orm.Where("id=?", id)); err != nil {
		return nil, reason.ErrDB.Withf(`Del assignment id[%s] err[%s]`, id, err.Error())
	}
	return &out, nil
}
