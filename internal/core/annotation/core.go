package annotation

import (
	"context"
	"log/slog"
	"time"

	"github.com/ixugo/goddd/domain/uniqueid"
	"github.com/ixugo/goddd/pkg/orm"
	gocache "github.com/patrickmn/go-cache"
	"gorm.io/gorm"
)

// Storer data persistence
type Storer interface {
	Comment() CommentStorer
}

type CommentStorer interface {
	Find(context.Context, *[]*Comment, orm.Pager, ...orm.QueryOption) (int64, error)
	Get(context.Context, *Comment, ...orm.QueryOption) error
	Add(context.Context, *Comment) error
	Edit(context.Context, *Comment, func(*Comment), ...orm.QueryOption) error
	Del(context.Context, *Comment, ...orm.QueryOption) error
	Count(context.Context, ...orm.QueryOption) (int64, error)
	Session(context.Context, ...func(*gorm.DB) error) error
}

// NameResolver 解耦批注域与医生域，查询批注作者的展示名
type NameResolver interface {
	DoctorName(ctx context.Context, user string) (string, error)
}

// VideoResolver 查询视频时长，用于时间戳范围校验
type VideoResolver interface {
	VideoDuration(ctx context.Context, sessionID, title string) (float64, bool)
}

// Core business domain
type Core struct {
	store  Storer
	uni    uniqueid.Core
	names  NameResolver
	videos VideoResolver

	// 展示名查询走缓存，批注列表逐条回源太贵
	nameCache *gocache.Cache
}

type Option func(*Core)

// WithNameResolver 注入医生展示名查询
func WithNameResolver(r NameResolver) Option {
	return func(c *Core) {
		c.names = r
	}
}

// WithVideoResolver 注入视频时长查询
func WithVideoResolver(r VideoResolver) Option {
	return func(c *Core) {
		c.videos = r
	}
}

// NewCore create business domain
func NewCore(store Storer, uni uniqueid.Core, opts ...Option) Core {
	c := Core{
		store:     store,
		uni:       uni,
		nameCache: gocache.New(5*time.Minute, 10*time.Minute),
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// fillDoctorNames 批量填充批注作者展示名
func (c Core) fillDoctorNames(ctx context.Context, items []*Comment) {
	if c.names == nil {
		return
	}
	for _, item := range items {
		if v, ok := c.nameCache.Get(item.Doctor); ok {
			item.DoctorName = v.(string)
			continue
		}
		name, err := c.names.DoctorName(ctx, item.Doctor)
		if err != nil {
			slog.DebugContext(ctx, "查询医生展示名失败", "doctor", item.Doctor, "err", err)
			continue
		}
		c.nameCache.SetDefault(item.Doctor, name)
		item.DoctorName = name
	}
}
