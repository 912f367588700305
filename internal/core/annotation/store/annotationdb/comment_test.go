package annotationdb

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ixugo/goddd/pkg/orm"
	"github.com/surgtrain/scrub/internal/core/annotation"
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

func TestCommentGet(t *testing.T) {
	db, mock, err := generateMockDB()
	if err != nil {
		t.Fatal(err)
	}
	store := NewDB(db)

	mock.ExpectQuery(`SELECT \* FROM "video_comments" WHERE id=\$1 (.+) LIMIT \$2`).
		WithArgs("vc1", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "session_id", "video_title", "timestamp", "comment_text"}).
			AddRow("vc1", "se1", "Intro", 10.5, "watch the bleeding here"))

	var out annotation.Comment
	if err := store.Comment().Get(context.Background(), &out, orm.Where("id=?", "vc1")); err != nil {
		t.Fatal(err)
	}
	if out.Timestamp != 10.5 {
		t.Fatalf("unexpected timestamp: %v", out.Timestamp)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal("ExpectationsWereMet err:", err)
	}
}

func TestCommentCount(t *testing.T) {
	db, mock, err := generateMockDB()
	if err != nil {
		t.Fatal(err)
	}
	store := NewDB(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "video_comments" WHERE session_id = \$1`).
		WithArgs("se1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	total, err := store.Comment().Count(context.Background(), orm.Where("session_id = ?", "se1"))
	if err != nil {
		t.Fatal(err)
	}
	if total != 3 {
		t.Fatalf("unexpected total: %d", total)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal("ExpectationsWereMet err:", err)
	}
}
