package sessiondb

import (
	"log/slog"

	"github.com/surgtrain/scrub/internal/core/session"
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
	if err := d.db.AutoMigrate(
		&session.Session{},
		&session.Video{},
		&session.Assignment{},
	); err != nil {
		slog.Error("AutoMigrate", "err", err)
	}
	return d
}

var _ session.Storer = &DB{}

func (d *DB) Session() session.SessionStorer {
	return Sessions{db: d.db}
}

func (d *DB) Video() session.VideoStorer {
	return Videos{db: d.db}
}

func (d *DB) Assignment() session.AssignmentStorer {
	return Assignments{db: d.db}
}
