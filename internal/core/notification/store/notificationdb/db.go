package notificationdb

import (
	"context"
	"log/slog"

	"github.com/ixugo/goddd/pkg/orm"
	"github.com/surgtrain/scrub/internal/core/notification"
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
	if err := d.db.AutoMigrate(&notification.Notification{}); err != nil {
		slog.Error("AutoMigrate", "err", err)
	}
	return d
}

var _ notification.Storer = &DB{}

// Find implements notification.Storer.
func (d *DB) Find(ctx context.Context, items *[]*notification.Notification, pager orm.Pager, opts ...orm.QueryOption) (int64, error) {
	db := d.db.WithContext(ctx).Model(&notification.Notification{})
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

// Add implements notification.Storer.
func (d *DB) Add(ctx context.Context, in *notification.Notification) error {
	return d.db.WithContext(ctx).Create(in).Error
}

// Edit implements notification.Storer.
func (d *DB) Edit(ctx context.Context, out *notification.Notification, changeFn func(*notification.Notification), opts ...orm.QueryOption) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
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

// BatchEdit implements notification.Storer.
func (d *DB) BatchEdit(ctx context.Context, field string, value any, opts ...orm.QueryOption) error {
	db := d.db.WithContext(ctx).Model(&notification.Notification{})
	for _, opt := range opts {
		db = opt(db)
	}
	return db.Update(field, value).Error
}

// Count implements notification.Storer.
func (d *DB) Count(ctx context.Context, opts ...orm.QueryOption) (int64, error) {
	db := d.db.WithContext(ctx).Model(&notification.Notification{})
	for _, opt := range opts {
		db = opt(db)
	}
	var total int64
	err := db.Count(&total).Error
	return total, err
}
