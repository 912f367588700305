package annotationdb

import (
	"context"
	"log/slog"

	"github.com/ixugo/goddd/pkg/orm"
	"github.com/surgtrain/scrub/internal/core/annotation"
	"gorm.io/gorm"
)

type DB struct {
	db *gorm.DB
}

func NewDB(db *gorm.DB) *DB {
	return &DB{db: db}
}

// AutoMigrate 按需自动建表
func (d *DB) AutoMigrate(ok bool) *DB {
	if !ok {
		return d
	}
	if err := d.db.AutoMigrate(&annotation.Comment{}); err != nil {
		slog.Error("AutoMigrate", "err", err)
	}
	return d
}

var _ annotation.Storer = &DB{}

func (d *DB) Comment() annotation.CommentStorer {
	return Comments{db: d.db}
}

type Comments struct {
	db *gorm.DB
}

// Find implements annotation.CommentStorer.
func (c Comments) Find(ctx context.Context, items *[]*annotation.Comment, pager orm.Pager, opts ...orm.QueryOption) (int64, error) {
	db := c.db.WithContext(ctx).Model(&annotation.Comment{})
	for _, opt := range opts {
		db = opt(db)
	}
	var total int64
	if err := db.Count(&total).Error; err != nil {
		return 0, err
	}
	if pager != nil {
		db = db.Offset(pager.Offset()).Limit(pager.Limit())
	}
	return total, db.Find(items).Error
}

// Get implements annotation.CommentStorer.
func (c Comments) Get(ctx context.Context, out *annotation.Comment, opts ...orm.QueryOption) error {
	db := c.db.WithContext(ctx)
	for _, opt := range opts {
		db = opt(db)
	}
	return db.First(out).Error
}

// Add implements annotation.CommentStorer.
func (c Comments) Add(ctx context.Context, in *annotation.Comment) error {
	return c.db.WithContext(ctx).Create(in).Error
}

// Edit implements annotation.CommentStorer.
func (c Comments) Edit(ctx context.Context, out *annotation.Comment, changeFn func(*annotation.Comment), opts ...orm.QueryOption) error {
	return c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		db := tx
		for _, opt := range opts {
			db = opt(db)
		}
		if err := db.First(out).Error; err != nil {
			return err
		}
		changeFn(out)
		return tx.Save(out).Error
	})
}

// Del implements annotation.CommentStorer.
func (c Comments) Del(ctx context.Context, out *annotation.Comment, opts ...orm.QueryOption) error {
	db := c.db.WithContext(ctx)
	for _, opt := range opts {
		db = opt(db)
	}
	return db.Delete(out).Error
}

// Count implements annotation.CommentStorer.
func (c Comments) Count(ctx context.Context, opts ...orm.QueryOption) (int64, error) {
	db := c.db.WithContext(ctx).Model(&annotation.Comment{})
	for _, opt := range opts {
		db = opt(db)
	}
	var total int64
	err := db.Count(&total).Error
	return total, err
}

// Session implements annotation.CommentStorer.
func (c Comments) Session(ctx context.Context, changeFns ...func(*gorm.DB) error) error {
	return c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, fn := range changeFns {
			if err := fn(tx); err != nil {
				return err
			}
		}
		return nil
	})
}
