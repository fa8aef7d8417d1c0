package migration

import (
	"context"
	"errors"
	"strings"
	"testing"

	"skill-swap/internal/database"
)

type recordingTx struct {
	execs      []string
	execErrAt  int
	committed  bool
	rolledBack bool
}

func (t *recordingTx) Exec(_ context.Context, query string, _ ...any) (int64, error) {
	t.execs = append(t.execs, query)
	if t.execErrAt > 0 && len(t.execs) == t.execErrAt {
		return 0, errors.New("boom")
	}
	return 0, nil
}

func (t *recordingTx) Query(context.Context, string, ...any) (database.Rows, error) {
	return nil, errors.New("unexpected query")
}

func (t *recordingTx) QueryRow(context.Context, string, ...any) database.Row { return nil }

func (t *recordingTx) Commit(context.Context) error {
	t.committed = true
	return nil
}

func (t *recordingTx) Rollback(context.Context) error {
	t.rolledBack = true
	return nil
}

type recordingDB struct {
	tx       *recordingTx
	beginErr error
	execs    []string
}

func (d *recordingDB) Ping(context.Context) error { return nil }
func (d *recordingDB) Close() error               { return nil }

func (d *recordingDB) Exec(_ context.Context, query string, _ ...any) (int64, error) {
	d.execs = append(d.execs, query)
	return 0, nil
}

func (d *recordingDB) Query(context.Context, string, ...any) (database.Rows, error) {
	return nil, errors.New("unexpected query")
}

func (d *recordingDB) QueryRow(context.Context, string, ...any) database.Row { return nil }

func (d *recordingDB) Begin(context.Context) (database.Tx, error) {
	if d.beginErr != nil {
		return nil, d.beginErr
	}
	return d.tx, nil
}

func TestRun_LockAndStatementsShareTransaction(t *testing.T) {
	tx := &recordingTx{}
	db := &recordingDB{tx: tx}

	if err := (Runner{}).Run(context.Background(), db); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if len(db.execs) != 0 {
		t.Fatalf("statements must not run outside the transaction: %v", db.execs)
	}
	if len(tx.execs) != len(statements)+1 {
		t.Fatalf("expected lock + %d statements, got %d", len(statements), len(tx.execs))
	}
	if !strings.Contains(tx.execs[0], "pg_advisory_xact_lock") {
		t.Fatalf("first statement must take the xact lock, got %q", tx.execs[0])
	}
	if !tx.committed {
		t.Fatal("transaction not committed")
	}
}

func TestRun_FailedStatementRollsBack(t *testing.T) {
	tx := &recordingTx{execErrAt: 2}
	db := &recordingDB{tx: tx}

	if err := (Runner{}).Run(context.Background(), db); err == nil {
		t.Fatal("expected error")
	}
	if tx.committed {
		t.Fatal("failed run must not commit")
	}
	if !tx.rolledBack {
		t.Fatal("failed run must roll back")
	}
}

func TestRun_NilDB(t *testing.T) {
	if err := (Runner{}).Run(context.Background(), nil); err == nil {
		t.Fatal("expected error for nil db")
	}
}
