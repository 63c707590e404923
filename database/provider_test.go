package database

import (
	"context"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func sqliteDialector(path string) DialectorFunc {
	return func() gorm.Dialector {
		return sqlite.Open(path)
	}
}

func newTestProvider(t *testing.T) *Provider {
	t.Helper()
	p := NewProvider(sqliteDialector(filepath.Join(t.TempDir(), "agency.db")))
	t.Cleanup(func() { p.Close() })
	return p
}

func TestProviderMemoizesConnection(t *testing.T) {
	p := newTestProvider(t)
	ctx := context.Background()

	first, err := p.Get(ctx)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	second, err := p.Get(ctx)
	if err != nil {
		t.Fatalf("second Get failed: %v", err)
	}
	if first.Conn() != second.Conn() {
		t.Error("Get returned two different connections")
	}
	if got := p.Connects(); got != 1 {
		t.Errorf("Connects() = %d, want 1", got)
	}
}

func TestProviderEnsuresCollections(t *testing.T) {
	p := newTestProvider(t)
	db, err := p.Get(context.Background())
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	for _, table := range []string{"contacts", "newsletter", "blog_posts", "portfolio"} {
		if !db.Conn().Migrator().HasTable(table) {
			t.Errorf("table %q was not created", table)
		}
	}
}

func TestProviderConcurrentGetConnectsOnce(t *testing.T) {
	p := newTestProvider(t)

	const callers = 16
	var wg sync.WaitGroup
	conns := make([]*gorm.DB, callers)
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			db, err := p.Get(context.Background())
			conns[i], errs[i] = db.Conn(), err
		}(i)
	}
	wg.Wait()

	for i := 0; i < callers; i++ {
		if errs[i] != nil {
			t.Fatalf("caller %d: %v", i, errs[i])
		}
		if conns[i] != conns[0] {
			t.Errorf("caller %d got a different connection", i)
		}
	}
	if got := p.Connects(); got != 1 {
		t.Errorf("Connects() = %d, want 1", got)
	}
}

func TestProviderRetriesAfterFailure(t *testing.T) {
	dir := t.TempDir()
	var healthy atomic.Bool
	p := NewProvider(func() gorm.Dialector {
		if healthy.Load() {
			return sqlite.Open(filepath.Join(dir, "agency.db"))
		}
		return sqlite.Open(filepath.Join(dir, "missing", "nested", "agency.db"))
	})
	t.Cleanup(func() { p.Close() })

	if _, err := p.Get(context.Background()); err == nil {
		t.Fatal("expected the first Get to fail")
	}
	if got := p.Connects(); got != 0 {
		t.Errorf("Connects() after failure = %d, want 0", got)
	}

	healthy.Store(true)
	if _, err := p.Get(context.Background()); err != nil {
		t.Fatalf("Get after recovery failed: %v", err)
	}
	if got := p.Connects(); got != 1 {
		t.Errorf("Connects() = %d, want 1", got)
	}
}

func TestProviderCloseAllowsReconnect(t *testing.T) {
	p := newTestProvider(t)
	if _, err := p.Get(context.Background()); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("second Close failed: %v", err)
	}
	if _, err := p.Get(context.Background()); err != nil {
		t.Fatalf("Get after Close failed: %v", err)
	}
	if got := p.Connects(); got != 2 {
		t.Errorf("Connects() = %d, want 2", got)
	}
}

func TestWithDatabaseName(t *testing.T) {
	tests := []struct {
		name string
		dsn  string
		db   string
		want string
	}{
		{"url without path", "postgres://user:pw@localhost:5432", "agency_website", "postgres://user:pw@localhost:5432/agency_website"},
		{"url with bare slash", "postgres://user:pw@localhost:5432/?sslmode=disable", "agency_website", "postgres://user:pw@localhost:5432/agency_website?sslmode=disable"},
		{"url keeps its database", "postgresql://localhost/other", "agency_website", "postgresql://localhost/other"},
		{"key value appends dbname", "host=localhost user=app", "agency_website", "host=localhost user=app dbname=agency_website"},
		{"key value keeps dbname", "host=localhost dbname=other", "agency_website", "host=localhost dbname=other"},
		{"empty name", "postgres://localhost", "", "postgres://localhost"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WithDatabaseName(tt.dsn, tt.db); got != tt.want {
				t.Errorf("WithDatabaseName(%q, %q) = %q, want %q", tt.dsn, tt.db, got, tt.want)
			}
		})
	}
}
