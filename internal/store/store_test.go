package store

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

// openTestStore opens a shared-cache in-memory database private to the test.
func openTestStore(t *testing.T) *Store {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	s, err := Open(context.Background(), "file:" + name + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil db")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestFileDatabaseUsesWAL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiltwelve.db")
	s, err := Open(context.Background(), path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	var mode string
	if err := s.DB().QueryRow("PRAGMA journal_mode").Scan(&mode); err != nil {
		t.Fatalf("journal_mode: %v", err)
	}
	if mode != "wal" {
		t.Errorf("journal_mode = %q, want wal", mode)
	}
}

// kvImpls runs each test against both the SQLite and the in-memory KV.
func kvImpls(t *testing.T) map[string]KV {
	return map[string]KV{
		"sqlite": openTestStore(t).KV(),
		"memory": NewMemory(),
	}
}

func TestKVGetMissing(t *testing.T) {
	for name, kv := range kvImpls(t) {
		t.Run(name, func(t *testing.T) {
			v, ok, err := kv.Get(context.Background(), "nope")
			if err != nil {
				t.Fatalf("get: %v", err)
			}
			if ok || v != "" {
				t.Errorf("got (%q, %v), want (\"\", false)", v, ok)
			}
		})
	}
}

func TestKVSetOverwrites(t *testing.T) {
	for name, kv := range kvImpls(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			if err := kv.Set(ctx, KeyTheme, "dark"); err != nil {
				t.Fatalf("set: %v", err)
			}
			if err := kv.Set(ctx, KeyTheme, "kids"); err != nil {
				t.Fatalf("set again: %v", err)
			}
			v, ok, err := kv.Get(ctx, KeyTheme)
			if err != nil {
				t.Fatalf("get: %v", err)
			}
			if !ok || v != "kids" {
				t.Errorf("got (%q, %v), want (\"kids\", true)", v, ok)
			}
		})
	}
}

func TestKVDeleteAndKeys(t *testing.T) {
	for name, kv := range kvImpls(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			for _, k := range []string{TableScoreKey(7), KeyLanguage, KeyHideAnswers} {
				if err := kv.Set(ctx, k, "x"); err != nil {
					t.Fatalf("set %s: %v", k, err)
				}
			}
			if err := kv.Delete(ctx, KeyLanguage); err != nil {
				t.Fatalf("delete: %v", err)
			}
			if err := kv.Delete(ctx, "missing"); err != nil {
				t.Fatalf("delete missing: %v", err)
			}

			keys, err := kv.Keys(ctx)
			if err != nil {
				t.Fatalf("keys: %v", err)
			}
			want := []string{KeyHideAnswers, "table_7_score"}
			if !reflect.DeepEqual(keys, want) {
				t.Errorf("keys = %v, want %v", keys, want)
			}
		})
	}
}

func TestKVClear(t *testing.T) {
	for name, kv := range kvImpls(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			_ = kv.Set(ctx, KeyStatistics, `{}`)
			_ = kv.Set(ctx, TableScoreKey(1), "3")
			if err := kv.Clear(ctx); err != nil {
				t.Fatalf("clear: %v", err)
			}
			keys, err := kv.Keys(ctx)
			if err != nil {
				t.Fatalf("keys: %v", err)
			}
			if len(keys) != 0 {
				t.Errorf("keys after clear = %v", keys)
			}
		})
	}
}

func TestKVEmptyKey(t *testing.T) {
	for name, kv := range kvImpls(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			if err := kv.Set(ctx, "", "v"); !errors.Is(err, ErrEmptyKey) {
				t.Errorf("set err = %v, want ErrEmptyKey", err)
			}
			if _, _, err := kv.Get(ctx, ""); !errors.Is(err, ErrEmptyKey) {
				t.Errorf("get err = %v, want ErrEmptyKey", err)
			}
		})
	}
}

func TestKVPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiltwelve.db")
	ctx := context.Background()

	s, err := Open(context.Background(), path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.KV().Set(ctx, KeyLanguage, "pt-BR"); err != nil {
		t.Fatalf("set: %v", err)
	}
	s.Close()

	s, err = Open(context.Background(), path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	v, ok, err := s.KV().Get(ctx, KeyLanguage)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok || v != "pt-BR" {
		t.Errorf("got (%q, %v), want (\"pt-BR\", true)", v, ok)
	}
}

func TestTableScoreKey(t *testing.T) {
	if got := TableScoreKey(12); got != "table_12_score" {
		t.Errorf("TableScoreKey(12) = %q", got)
	}
}

func TestDefaultDBPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TILTWELVE_DB", "")
	t.Setenv("XDG_DATA_HOME", dir)

	p, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("DefaultDBPath: %v", err)
	}
	if want := filepath.Join(dir, "tiltwelve", "tiltwelve.db"); p != want {
		t.Errorf("path = %q, want %q", p, want)
	}

	override := filepath.Join(dir, "custom", "my.db")
	t.Setenv("TILTWELVE_DB", override)
	if p, _ := DefaultDBPath(); p != override {
		t.Errorf("env override = %q, want %q", p, override)
	}
}
