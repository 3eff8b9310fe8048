package engine

import (
	"context"
	"strings"
	"testing"

	apperrors "github.com/skillsenselab/enginekit/errors"
	"github.com/skillsenselab/enginekit/logger"
	"github.com/skillsenselab/enginekit/provider"
)

type tableStub struct {
	funcs map[string]Function
}

func (s *tableStub) Function(name string) (Function, bool) {
	fn, ok := s.funcs[name]
	return fn, ok
}

type funcStub struct {
	results []uint64
	calls   int
}

func (f *funcStub) Call(ctx context.Context, params ...uint64) ([]uint64, error) {
	f.calls++
	return f.results, nil
}

func stubTable(names ...string) *tableStub {
	funcs := make(map[string]Function, len(names))
	for _, name := range names {
		funcs[name] = &funcStub{}
	}
	return &tableStub{funcs: funcs}
}

func TestBaseGlueBindExports(t *testing.T) {
	g := NewBaseGlue(provider.PostgreSQL, "query_engine_postgresql", nil, "query")

	t.Run("missing start export fails", func(t *testing.T) {
		err := g.BindExports(stubTable("query"))
		if err == nil {
			t.Fatal("expected error for missing start export")
		}
		if !strings.Contains(err.Error(), StartFunction) {
			t.Errorf("expected %q in error %q", StartFunction, err.Error())
		}
	})

	t.Run("missing required export fails", func(t *testing.T) {
		err := g.BindExports(stubTable(StartFunction))
		if err == nil {
			t.Fatal("expected error for missing required export")
		}
		if !strings.Contains(err.Error(), "query") {
			t.Errorf("expected 'query' in error %q", err.Error())
		}
	})

	t.Run("complete table binds", func(t *testing.T) {
		if err := g.BindExports(stubTable(StartFunction, "query")); err != nil {
			t.Fatalf("BindExports: %v", err)
		}
		if !g.Engine().Bound() {
			t.Error("expected engine handle to be bound")
		}
	})
}

func TestBaseGlueEngineIdentity(t *testing.T) {
	g := NewBaseGlue(provider.MySQL, "query_engine_mysql", nil)
	if g.Engine() != g.Engine() {
		t.Error("expected a stable engine handle")
	}
	if g.Engine().Provider() != provider.MySQL {
		t.Errorf("expected mysql, got %s", g.Engine().Provider())
	}
	if g.Namespace() != "query_engine_mysql" {
		t.Errorf("unexpected namespace %q", g.Namespace())
	}
}

func TestEngineCall(t *testing.T) {
	g := NewBaseGlue(provider.SQLite, "query_engine_sqlite", nil)
	eng := g.Engine()

	t.Run("unbound engine rejects calls", func(t *testing.T) {
		if _, err := eng.Call(context.Background(), "query"); err == nil {
			t.Fatal("expected error before exports are bound")
		}
	})

	query := &funcStub{results: []uint64{42}}
	table := &tableStub{funcs: map[string]Function{
		StartFunction: &funcStub{},
		"query":       query,
	}}
	if err := g.BindExports(table); err != nil {
		t.Fatalf("BindExports: %v", err)
	}

	t.Run("bound export is callable", func(t *testing.T) {
		results, err := eng.Call(context.Background(), "query", 7)
		if err != nil {
			t.Fatalf("Call: %v", err)
		}
		if len(results) != 1 || results[0] != 42 {
			t.Errorf("unexpected results %v", results)
		}
		if query.calls != 1 {
			t.Errorf("expected 1 call, got %d", query.calls)
		}
	})

	t.Run("unknown export fails", func(t *testing.T) {
		if _, err := eng.Call(context.Background(), "missing"); err == nil {
			t.Fatal("expected error for unknown export")
		}
	})
}

func TestRegistry(t *testing.T) {
	factory := func() Glue {
		return NewBaseGlue(provider.PostgreSQL, "query_engine_postgresql", nil)
	}
	r := NewRegistry().With(provider.PostgreSQL, factory)

	if _, ok := r.Lookup(provider.PostgreSQL); !ok {
		t.Error("expected postgresql factory")
	}
	if _, ok := r.Lookup(provider.MySQL); ok {
		t.Error("expected no mysql factory")
	}
	families := r.Families()
	if len(families) != 1 || families[0] != provider.PostgreSQL {
		t.Errorf("unexpected families %v", families)
	}
}

func TestConfigDefaultsAndValidation(t *testing.T) {
	t.Run("artifact name defaults", func(t *testing.T) {
		cfg := Config{Root: "/opt/engines"}
		cfg.ApplyDefaults()
		if cfg.ArtifactName != DefaultArtifactName {
			t.Errorf("expected %q, got %q", DefaultArtifactName, cfg.ArtifactName)
		}
	})

	t.Run("root required", func(t *testing.T) {
		cfg := Config{}
		err := cfg.Validate()
		if err == nil {
			t.Fatal("expected error for missing root")
		}
		appErr, ok := apperrors.AsAppError(err)
		if !ok {
			t.Fatalf("expected AppError, got %T", err)
		}
		if appErr.Code != apperrors.ErrCodeConfiguration {
			t.Errorf("expected code %s, got %s", apperrors.ErrCodeConfiguration, appErr.Code)
		}
		if !strings.Contains(appErr.Message, "root: is required") {
			t.Errorf("expected root failure in %q", appErr.Message)
		}
	})

	t.Run("preload accepts aliases", func(t *testing.T) {
		cfg := Config{Root: "/opt/engines", Preload: []string{"postgres", "mariadb"}}
		if err := cfg.Validate(); err != nil {
			t.Fatalf("Validate: %v", err)
		}
	})

	t.Run("preload rejects unknown providers", func(t *testing.T) {
		cfg := Config{Root: "/opt/engines", Preload: []string{"oracle"}}
		err := cfg.Validate()
		if err == nil {
			t.Fatal("expected error for unsupported preload provider")
		}
		appErr, ok := apperrors.AsAppError(err)
		if !ok {
			t.Fatalf("expected AppError, got %T", err)
		}
		if appErr.Code != apperrors.ErrCodeConfiguration {
			t.Errorf("expected code %s, got %s", apperrors.ErrCodeConfiguration, appErr.Code)
		}
		if !strings.Contains(appErr.Message, "must be a supported provider") {
			t.Errorf("expected provider failure in %q", appErr.Message)
		}
	})
}

type memStub struct {
	data []byte
}

func (m *memStub) Read(offset, count uint32) ([]byte, bool) {
	if uint64(offset)+uint64(count) > uint64(len(m.data)) {
		return nil, false
	}
	return m.data[offset : offset+count], true
}

func TestLogHostFunc(t *testing.T) {
	fn := LogHostFunc(logger.Get("test"))
	if len(fn.Params) != 3 {
		t.Fatalf("expected 3 params, got %d", len(fn.Params))
	}

	mem := &memStub{data: []byte("hello from the engine")}
	// level=1 (info), ptr=0, len=5
	fn.Fn(context.Background(), mem, []uint64{1, 0, 5})
	// Out-of-bounds read must not panic.
	fn.Fn(context.Background(), mem, []uint64{1, 0, 9999})
}

func TestNowHostFunc(t *testing.T) {
	fn := NowHostFunc()
	stack := []uint64{0}
	fn.Fn(context.Background(), nil, stack)
	if stack[0] == 0 {
		t.Error("expected a non-zero timestamp")
	}
}

func TestDefaultImports(t *testing.T) {
	imports := DefaultImports(logger.Get("test"))
	for _, name := range []string{HostLog, HostNowMS, HostRandSeed} {
		if _, ok := imports[name]; !ok {
			t.Errorf("missing import %q", name)
		}
	}
}
