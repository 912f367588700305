package session

import (
	"context"

	"github.com/ixugo/goddd/domain/uniqueid"
	"github.com/ixugo/goddd/pkg/orm"
	"gorm.io/gorm"
)

// Storer data persistence
type Storer interface {
	Session() SessionStorer
	Video() VideoStorer
	Assignment() AssignmentStorer
}

type SessionStorer interface {
	Find(context.Context, *[]*Session, orm.Pager, ...orm.QueryOption) (int64, error)
	Get(context.Context, *Session, ...orm.QueryOption) error
	Add(context.Context, *Session) error
	Edit(context.Context, *Session, func(*Session), ...orm.QueryOption) error
	Del(context.Context, *Session, ...orm.QueryOption) error
	Session(context.Context, ...func(*gorm.DB) error) error
}

type VideoStorer interface {
	Find(context.Context, *[]*Video, orm.Pager, ...orm.QueryOption) (int64, error)
	Get(context.Context, *Video, ...orm.QueryOption) error
	Add(context.Context, *Video) error
	Edit(context.Context, *Video, func(*Video), ...orm.QueryOption) error
	Del(context.Context, *Video, ...orm.QueryOption) error
}

type AssignmentStorer interface {
	Find(context.Context, *[]*Assignment, orm.Pager, ...orm.QueryOption) (int64, error)
	Get(context.Context, *Assignment, ...orm.QueryOption) error
	Add(context.Context, *Assignment) error
	Del(context.Context, *Assignment, ...orm.QueryOption) error
}

// Notifier 解耦会话域与通知域，分配会话时通知医生
type Notifier interface {
	AssignmentCreated(ctx context.Context, doctor, sessionID, title string)
}

// Core business domain
type Core struct {
	store    Storer
	uni      uniqueid.Core
	notifier Notifier
}

type Option func(*Core)

// WithNotifier 注入通知提供者
func WithNotifier(n Notifier) Option {
	return func(c *Core) {
		c.notifier = n
	}
}

// NewCore create business domain
func NewCore(store Storer, uni uniqueid.Core, opts ...Option) Core {
	c := Core{store: store, uni: uni}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
