package sessiondb

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ixugo/goddd/pkg/orm"
	"github.com/surgtrain/scrub/internal/core/session"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func generateMockDB() (*gorm.DB, sqlmock.Sqlmock, error) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		return nil, nil, err
	}
	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		return nil, nil, err
	}
	return db, mock, nil
}

func TestSessionGet(t *testing.T) {
	db, mock, err := generateMockDB()
	if err != nil {
		t.Fatal(err)
	}
	store := NewDB(db)

	mock.ExpectQuery(`SELECT \* FROM "sessions" WHERE id=\$1 (.+) LIMIT \$2`).
		WithArgs("se1", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "status"}).
			AddRow("se1", "Scenario: Anaphylaxis", session.StatusActive))

	var out session.Session
	if err := store.Session().Get(context.Background(), &out, orm.Where("id=?", "se1")); err != nil {
		t.Fatal(err)
	}
	if out.Title != "Scenario: Anaphylaxis" {
		t.Fatalf("unexpected title: %s", out.Title)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal("ExpectationsWereMet err:", err)
	}
}

func TestVideoGet(t *testing.T) {
	db, mock, err := generateMockDB()
	if err != nil {
		t.Fatal(err)
	}
	store := NewDB(db)

	mock.ExpectQuery(`SELECT \* FROM "session_videos" WHERE session_id = \$1 AND title = \$2 (.+) LIMIT \$3`).
		WithArgs("se1", "Intro", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "session_id", "title", "duration"}).
			AddRow("sv1", "se1", "Intro", 120.0))

	var out session.Video
	if err := store.Video().Get(context.Background(), &out,
		orm.Where("session_id = ? AND title = ?", "se1", "Intro"),
	); err != nil {
		t.Fatal(err)
	}
	if out.Duration != 120 {
		t.Fatalf("unexpected duration: %v", out.Duration)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal("ExpectationsWereMet err:", err)
	}
}
