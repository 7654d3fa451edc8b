package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/peerfold/peerfold/internal/logger"
)

func newTestSessionStore(t *testing.T) (*sessionStore, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	s := NewSessionStore(&DB{DB: db, logger: l}, l).(*sessionStore)
	return s, mock, db
}

func TestSessionStoreGet_PersistedValue(t *testing.T) {
	s, mock, db := newTestSessionStore(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"value"}).AddRow([]byte(`"/home/user/sync"`))
	mock.ExpectQuery("SELECT value FROM session_values").
		WithArgs("sync-folder-path").
		WillReturnRows(rows)

	var path string
	found, err := s.Get(context.Background(), "sync-folder-path", &path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !found {
		t.Fatal("expected value to be found")
	}
	if path != "/home/user/sync" {
		t.Errorf("expected /home/user/sync, got %s", path)
	}
}

func TestSessionStoreGet_MissingKey(t *testing.T) {
	s, mock, db := newTestSessionStore(t)
	defer db.Close()

	mock.ExpectQuery("SELECT value FROM session_values").
		WithArgs("gossip-ticket").
		WillReturnError(sql.ErrNoRows)

	var ticket string
	found, err := s.Get(context.Background(), "gossip-ticket", &ticket)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found {
		t.Fatal("expected missing key to report not found")
	}
}

func TestSessionStoreGet_QueryError(t *testing.T) {
	s, mock, db := newTestSessionStore(t)
	defer db.Close()

	mock.ExpectQuery("SELECT value FROM session_values").
		WillReturnError(errors.New("database is locked"))

	var v string
	_, err := s.Get(context.Background(), "auto-sync-enabled", &v)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, ErrScanningRow) {
		t.Errorf("expected ErrScanningRow, got: %v", err)
	}
}

func TestSessionStoreGet_SeesOwnStagedWrite(t *testing.T) {
	s, _, db := newTestSessionStore(t)
	defer db.Close()

	ctx := context.Background()
	if err := s.Set(ctx, "auto-sync-enabled", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// no ExpectQuery: the staged value must short-circuit the database
	var enabled bool
	found, err := s.Get(ctx, "auto-sync-enabled", &enabled)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !found || !enabled {
		t.Errorf("expected staged true value, got found=%v enabled=%v", found, enabled)
	}
}

func TestSessionStoreCommit_FlushesStagedWrites(t *testing.T) {
	s, mock, db := newTestSessionStore(t)
	defer db.Close()

	ctx := context.Background()
	if err := s.Set(ctx, "sync-folder-path", "/data/sync"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Set(ctx, "auto-sync-enabled", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// keys are written in sorted order
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO session_values").
		WithArgs("auto-sync-enabled", []byte(`true`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO session_values").
		WithArgs("sync-folder-path", []byte(`"/data/sync"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := s.Commit(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}

	// staged set is cleared after a successful commit
	if len(s.staged) != 0 {
		t.Errorf("expected staged writes to be cleared, got %d entries", len(s.staged))
	}
}

func TestSessionStoreCommit_NothingStaged(t *testing.T) {
	s, mock, db := newTestSessionStore(t)
	defer db.Close()

	if err := s.Commit(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("commit without staged writes should not touch the DB: %v", err)
	}
}

func TestSessionStoreCommit_ExecErrorKeepsStaged(t *testing.T) {
	s, mock, db := newTestSessionStore(t)
	defer db.Close()

	ctx := context.Background()
	if err := s.Set(ctx, "gossip-ticket", "abc123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO session_values").
		WillReturnError(errors.New("disk I/O error"))
	mock.ExpectRollback()

	err := s.Commit(ctx)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, ErrExecutingStatement) {
		t.Errorf("expected ErrExecutingStatement, got: %v", err)
	}

	// failed commit must keep the staged write for retry or discard
	if _, ok := s.staged["gossip-ticket"]; !ok {
		t.Error("expected staged write to survive a failed commit")
	}
}

func TestSessionStoreCommit_BeginError(t *testing.T) {
	s, mock, db := newTestSessionStore(t)
	defer db.Close()

	ctx := context.Background()
	if err := s.Set(ctx, "gossip-ticket", "abc123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mock.ExpectBegin().WillReturnError(errors.New("database is closed"))

	err := s.Commit(ctx)
	if !errors.Is(err, ErrBeginningTransaction) {
		t.Errorf("expected ErrBeginningTransaction, got: %v", err)
	}
}

func TestSessionStoreDiscard(t *testing.T) {
	s, _, db := newTestSessionStore(t)
	defer db.Close()

	ctx := context.Background()
	if err := s.Set(ctx, "sync-folder-path", "/tmp/sync"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s.Discard()

	if len(s.staged) != 0 {
		t.Errorf("expected no staged writes after discard, got %d", len(s.staged))
	}
}

func TestSessionStoreSet_UnencodableValue(t *testing.T) {
	s, _, db := newTestSessionStore(t)
	defer db.Close()

	err := s.Set(context.Background(), "bad", func() {})
	if !errors.Is(err, ErrEncodingValue) {
		t.Errorf("expected ErrEncodingValue, got: %v", err)
	}
}
