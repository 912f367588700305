package notification

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/ixugo/goddd/pkg/orm"
	"github.com/ixugo/goddd/pkg/reason"
	"github.com/ixugo/goddd/pkg/web"
)

// 通知类型
const (
	KindAssignment = "assignment"
	KindSystem     = "system"
)

// Notification 站内通知
type Notification struct {
	ID        string   `gorm:"primaryKey" json:"id"`
	User      string   `gorm:"column:user;index" json:"user"`
	Title     string   `gorm:"column:title" json:"title"`
	Body      string   `gorm:"column:body" json:"body"`
	Kind      string   `gorm:"column:kind" json:"kind"`
	IsRead    bool     `gorm:"column:is_read" json:"is_read"`
	CreatedAt orm.Time `gorm:"column:created_at" json:"created_at"`
}

func (*Notification) TableName() string {
	return "user_notifications"
}

// Storer data persistence
type Storer interface {
	Find(context.Context, *[]*Notification, orm.Pager, ...orm.QueryOption) (int64, error)
	Add(context.Context, *Notification) error
	Edit(context.Context, *Notification, func(*Notification), ...orm.QueryOption) error
	BatchEdit(ctx context.Context, field string, value any, opts ...orm.QueryOption) error
	Count(context.Context, ...orm.QueryOption) (int64, error)
}

// Core business domain
type Core struct {
	store Storer
}

func NewCore(store Storer) Core {
	return Core{store: store}
}

type FindNotificationsInput struct {
	web.PagerFilter
	User       string `form:"-"` // 由 API 层从登录态填充
	UnreadOnly bool   `form:"unread_only"`
}

// Notify 写入一条通知，失败只记日志不阻断主流程
func (c Core) Notify(ctx context.Context, user, title, body, kind string) {
	n := Notification{
		ID:        uuid.NewString(),
		User:      user,
		Title:     title,
		Body:      body,
		Kind:      kind,
		CreatedAt: orm.Now(),
	}
	if err := c.store.Add(ctx, &n); err != nil {
		slog.ErrorContext(ctx, "写入通知失败", "user", user, "kind", kind, "err", err)
	}
}

// AssignmentCreated implements session.Notifier.
func (c Core) AssignmentCreated(ctx context.Context, doctor, sessionID, title string) {
	c.Notify(ctx, doctor, "新的训练会话", "您被分配了训练会话: "+title, KindAssignment)
	slog.InfoContext(ctx, "已通知医生", "doctor", doctor, "session", sessionID)
}

// FindNotifications 分页查询通知，附带未读数
func (c Core) FindNotifications(ctx context.Context, in *FindNotificationsInput) ([]*Notification, int64, int64, error) {
	query := orm.NewQuery(2).OrderBy("created_at DESC")
	query.Where("\"user\" = ?", in.User)
	if in.UnreadOnly {
		query.Where("is_read = ?", false)
	}
	items := make([]*Notification, 0, in.Limit())
	total, err := c.store.Find(ctx, &items, in, query.Encode()...)
	if err != nil {
		return nil, 0, 0, reason.ErrDB.Withf(`Find in[%+v] err[%s]`, in, err.Error())
	}
	unread, err := c.store.Count(ctx, orm.Where("\"user\" = ? AND is_read = ?", in.User, false))
	if err != nil {
		return nil, 0, 0, reason.ErrDB.Withf(`Count unread err[%s]`, err.Error())
	}
	return items, total, unread, nil
}

// MarkRead 将单条通知标记为已读
func (c Core) MarkRead(ctx context.Context, id, user string) error {
	var out Notification
	if err := c.store.Edit(ctx, &out, func(b *Notification) {
		b.IsRead = true
	}, orm.Where("id = ? AND \"user\" = ?", id, user)); err != nil {
		if orm.IsErrRecordNotFound(err) {
			return reason.ErrNotFound.Withf(`MarkRead id[%s]`, id)
		}
		return reason.ErrDB.Withf(`MarkRead id[%s] err[%s]`, id, err.Error())
	}
	return nil
}

// MarkAllRead 将用户全部通知标记为已读
func (c Core) MarkAllRead(ctx context.Context, user string) error {
	if err := c.store.BatchEdit(ctx, "is_read", true, orm.Where("\"user\" = ?", user)); err != nil {
		return reason.ErrDB.Withf(`MarkAllRead user[%s] err[%s]`, user, err.Error())
	}
	return nil
}
