package sessiondb

import (
	"context"

	"github.com/ixugo/goddd/pkg/orm"
	"github.com/surgtrain/scrub/internal/core/session"
	"gorm.io/gorm"
)

type Sessions struct {
	db *gorm.DB
}

// Find implements session.SessionStorer.
func (s Sessions) Find(ctx context.Context, items *[]*session.Session, pager orm.Pager, opts ...orm.QueryOption) (int64, error) {
	db := s.db.WithContext(ctx).Model(&session.Session{})
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

// Get implements session.SessionStorer.
func (s Sessions) Get(ctx context.Context, out *session.Session, opts ...orm.QueryOption) error {
	db := s.db.WithContext(ctx)
	for _, opt := range opts {
		db = opt(db)
	}
	return db.First(out).Error
}

// Add implements session.SessionStorer.
func (s Sessions) Add(ctx context.Context, in *session.Session) error {
	return s.db.WithContext(ctx).Create(in).Error
}

// Edit implements session.SessionStorer.
func (s Sessions) Edit(ctx context.Context, out *session.Session, changeFn func(*session.Session), opts ...orm.QueryOption) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
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

// Del implements session.SessionStorer.
func (s Sessions) Del(ctx context.Context, out *session.Session, opts ...orm.QueryOption) error {
	db := s.db.WithContext(ctx)
	for _, opt := range opts {
		db = opt(db)
	}
	return db.Delete(out).Error
}

// Session implements session.SessionStorer.
func (s Sessions) Session(ctx context.Context, changeFns ...func(*gorm.DB) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, fn := range changeFns {
			if err := fn(tx); err != nil {
				return err
			}
		}
		return nil
	})
}

type Videos struct {
	db *gorm.DB
}

// Find implements session.VideoStorer.
func (v Videos) Find(ctx context.Context, items *[]*session.Video, pager orm.Pager, opts ...orm.QueryOption) (int64, error) {
	db := v.db.WithContext(ctx).Model(&session.Video{})
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

// Get implements session.VideoStorer.
func (v Videos) Get(ctx context.Context, out *session.Video, opts ...orm.QueryOption) error {
	db := v.db.WithContext(ctx)
	for _, opt := range opts {
		db = opt(db)
	}
	return db.First(out).Error
}

// Add implements session.VideoStorer.
func (v Videos) Add(ctx context.Context, in *session.Video) error {
	return v.db.WithContext(ctx).Create(in).Error
}

// Edit implements session.VideoStorer.
func (v Videos) Edit(ctx context.Context, out *session.Video, changeFn func(*session.Video), opts ...orm.QueryOption) error {
	return v.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
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

// Del implements session.VideoStorer.
func (v Videos) Del(ctx context.Context, out *session.Video, opts ...orm.QueryOption) error {
	db := v.db.WithContext(ctx)
	for _, opt := range opts {
		db = opt(db)
	}
	return db.Delete(out).Error
}

type Assignments struct {
	db *gorm.DB
}

// Find implements session.AssignmentStorer.
func (a Assignments) Find(ctx context.Context, items *[]*session.Assignment, pager orm.Pager, opts ...orm.QueryOption) (int64, error) {
	db := a.db.WithContext(ctx).Model(&session.Assignment{})
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

// Get implements session.AssignmentStorer.
func (a Assignments) Get(ctx context.Context, out *session.Assignment, opts ...orm.QueryOption) error {
	db := a.db.WithContext(ctx)
	for _, opt := range opts {
		db = opt(db)
	}
	return db.First(out).Error
}

// Add implements session.AssignmentStorer.
func (a Assignments) Add(ctx context.Context, in *session.Assignment) error {
	return a.db.WithContext(ctx).Create(in).Error
}

// Del implements session.AssignmentStorer.
func (a Assignments) Del(ctx context.Context, out *session.Assignment, opts ...orm.QueryOption) error {
	db := a.db.WithContext(ctx)
	for _, opt := range opts {
		db = opt(db)
	}
	return db.Delete(out).Error
}
