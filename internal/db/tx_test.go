package db

import (
	"database/sql"
	"errors"
	"testing"

	_ "modernc.org/sqlite"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}

	_, err = conn.Exec(`CREATE TABLE songs (id INTEGER PRIMARY KEY, title TEXT)`)
	if err != nil {
		conn.Close()
		t.Fatalf("failed to create table: %v", err)
	}

	return conn
}

func rowCount(t *testing.T, conn *sql.DB) int {
	t.Helper()
	var count int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM songs`).Scan(&count); err != nil {
		t.Fatalf("query failed: %v", err)
	}
	return count
}

func TestWithTx_Success(t *testing.T) {
	conn := setupTestDB(t)
	defer conn.Close()

	err := WithTx(conn, func(tx *sql.Tx) error {
		_, err := tx.Exec(`INSERT INTO songs (title) VALUES (?)`, "Holiday")
		return err
	})

	if err != nil {
		t.Fatalf("WithTx failed: %v", err)
	}
	if got := rowCount(t, conn); got != 1 {
		t.Errorf("count = %d, want 1", got)
	}
}

func TestWithTx_Rollback(t *testing.T) {
	conn := setupTestDB(t)
	defer conn.Close()

	testErr := errors.New("test error")

	err := WithTx(conn, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`INSERT INTO songs (title) VALUES (?)`, "Holiday"); err != nil {
			return err
		}
		return testErr // trigger rollback
	})

	if !errors.Is(err, testErr) {
		t.Fatalf("WithTx should return the error: got %v, want %v", err, testErr)
	}
	if got := rowCount(t, conn); got != 0 {
		t.Errorf("count = %d, want 0 (rolled back)", got)
	}
}

func TestWithTx_MultipleOperations(t *testing.T) {
	conn := setupTestDB(t)
	defer conn.Close()

	err := WithTx(conn, func(tx *sql.Tx) error {
		for _, title := range []string{"One", "Two", "Three"} {
			if _, err := tx.Exec(`INSERT INTO songs (title) VALUES (?)`, title); err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		t.Fatalf("WithTx failed: %v", err)
	}
	if got := rowCount(t, conn); got != 3 {
		t.Errorf("count = %d, want 3", got)
	}
}

func TestWithTx_PartialRollback(t *testing.T) {
	conn := setupTestDB(t)
	defer conn.Close()

	err := WithTx(conn, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`INSERT INTO songs (title) VALUES (?)`, "One"); err != nil {
			return err
		}
		if _, err := tx.Exec(`INSERT INTO songs (title) VALUES (?)`, "Two"); err != nil {
			return err
		}
		return errors.New("abort")
	})

	if err == nil {
		t.Fatal("WithTx should return error")
	}
	if got := rowCount(t, conn); got != 0 {
		t.Errorf("count = %d, want 0 (all rolled back)", got)
	}
}
