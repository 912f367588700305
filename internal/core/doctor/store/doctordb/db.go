package doctordb

import (
	"context"
	"log/slog"

	"github.com/ixugo/goddd/pkg/orm"
	"github.com/surgtrain/scrub/internal/core/doctor"
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
	if err := d.db.AutoMigrate(&doctor.Doctor{}); err != nil {
		slog.Error("AutoMigrate", "err", err)
	}
	return d
}

var _ doctor.Storer = &DB{}

// Find implements doctor.Storer.
func (d *DB) Find(ctx context.Context, items *[]*doctor.Doctor, pager orm.Pager, opts ...orm.QueryOption) (int64, error) {
	db := d.db.WithContext(ctx).Model(&doctor.Doctor{})
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

// Get implements doctor.Storer.
func (d *DB) Get(ctx context.Context, out *doctor.Doctor, opts ...orm.QueryOption) error {
	db := d.db.WithContext(ctx)
	for _, opt := range opts {
		db = opt(db)
	}
	return db.First(out).Error
}

// Add implements doctor.Storer.
func (d *DB) Add(ctx context.Context, in *doctor.Doctor) error {
	return d.db.WithContext(ctx).Create(in).Error
}

// Edit implements doctor.Storer.
func (d *DB) Edit(ctx context.Context, out *doctor.Doctor, changeFn func(*doctor.Doctor), opts ...orm.QueryOption) error {
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

// Del implements doctor.Storer.
func (d *DB) Del(ctx context.Context, out *doctor.Doctor, opts ...orm.QueryOption) error {
	db := d.db.WithContext(ctx)
	for _, opt := range opts {
		db = opt(db)
	}
	return db.Delete(out).Error
}
