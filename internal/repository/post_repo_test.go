package repository

import (
	"Snapfeed/internal/model"
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	gdb, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("gorm open: %v", err)
	}
	return gdb, mock
}

func TestCreatePostInsertsRow(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewPostRepository(gdb)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `posts`")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CreatePost(context.Background(), &model.Post{
		ID:       "11111111-1111-1111-1111-111111111111",
		UserID:   "22222222-2222-2222-2222-222222222222",
		Caption:  "hi",
		URL:      "https://cdn.test/cat123.png",
		FileType: "image",
		FileName: "cat123.png",
	})
	if err != nil {
		t.Fatalf("create post: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestListPostsOrdersByCreatedAtDesc(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewPostRepository(gdb)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "user_id", "caption", "url", "file_type", "file_name", "width", "height", "created_at"}).
		AddRow("b", "u", "newer", "https://cdn.test/b.png", "image", "b.png", 0, 0, now).
		AddRow("a", "u", "older", "https://cdn.test/a.png", "image", "a.png", 0, 0, now.Add(-time.Hour))

	mock.ExpectQuery("SELECT \\* FROM `posts` ORDER BY created_at DESC, id DESC").
		WillReturnRows(rows)

	posts, err := repo.ListPosts(context.Background())
	if err != nil {
		t.Fatalf("list posts: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(posts))
	}
	if posts[0].ID != "b" || posts[1].ID != "a" {
		t.Fatalf("row order not preserved: %s, %s", posts[0].ID, posts[1].ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestGetPostNotFoundReturnsNil(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewPostRepository(gdb)

	mock.ExpectQuery("SELECT \\* FROM `posts` WHERE id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	post, err := repo.GetPost(context.Background(), "missing")
	if err != nil {
		t.Fatalf("get post: %v", err)
	}
	if post != nil {
		t.Fatalf("expected nil post for missing row, got %+v", post)
	}
}

func TestDeletePostReportsRowsAffected(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewPostRepository(gdb)

	mock.ExpectExec("DELETE FROM `posts` WHERE id = \\?").
		WillReturnResult(sqlmock.NewResult(0, 1))

	rows, err := repo.DeletePost(context.Background(), "some-id")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if rows != 1 {
		t.Fatalf("expected 1 row affected, got %d", rows)
	}

	mock.ExpectExec("DELETE FROM `posts` WHERE id = \\?").
		WillReturnResult(sqlmock.NewResult(0, 0))

	rows, err = repo.DeletePost(context.Background(), "some-id")
	if err != nil {
		t.Fatalf("second delete: %v", err)
	}
	if rows != 0 {
		t.Fatalf("expected 0 rows affected on repeat delete, got %d", rows)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
