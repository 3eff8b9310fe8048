package enginekit_test

import (
	"context"
	"testing"

	"github.com/skillsenselab/enginekit"
	"github.com/skillsenselab/enginekit/engine"
	"github.com/skillsenselab/enginekit/provider"
	"github.com/skillsenselab/enginekit/testutil"
)

func TestDefaultRegistryCoversAllFamilies(t *testing.T) {
	r := enginekit.DefaultRegistry()
	for _, id := range provider.Supported() {
		factory, ok := r.Lookup(id)
		if !ok {
			t.Errorf("missing glue factory for %s", id)
			continue
		}
		glue := factory()
		if glue.Engine().Provider() != id {
			t.Errorf("glue for %s reports provider %s", id, glue.Engine().Provider())
		}
		if glue.Namespace() == "" {
			t.Errorf("glue for %s has empty namespace", id)
		}
	}
}

func TestDefaultRegistryNamespacesAreDistinct(t *testing.T) {
	r := enginekit.DefaultRegistry()
	seen := make(map[string]provider.ID)
	for _, id := range r.Families() {
		factory, _ := r.Lookup(id)
		ns := factory().Namespace()
		if other, dup := seen[ns]; dup {
			t.Errorf("namespace %q shared by %s and %s", ns, id, other)
		}
		seen[ns] = id
	}
}

func TestNewResolvesWithDefaultRegistry(t *testing.T) {
	rt := testutil.NewFakeRuntime()
	rt.NextTable = testutil.NewFakeExportTable("query", "version")
	fs := testutil.NewMapFS()
	fs.PutArtifact("/opt/engines", provider.SQLServer, []byte("wasm"))

	loader, err := enginekit.New(engine.Config{Root: "/opt/engines"},
		engine.WithRuntime(rt),
		engine.WithFS(fs),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	eng, err := loader.Resolve(context.Background(), "mssql")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if eng.Provider() != provider.SQLServer {
		t.Errorf("expected sqlserver, got %s", eng.Provider())
	}
}

func TestNewOptionsOverrideRegistry(t *testing.T) {
	loader, err := enginekit.New(engine.Config{Root: "/opt/engines"},
		engine.WithRegistry(engine.NewRegistry()),
		engine.WithRuntime(testutil.NewFakeRuntime()),
		engine.WithFS(testutil.NewMapFS()),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	// With the registry overridden to empty, no family can load.
	if _, err := loader.Resolve(context.Background(), "postgresql"); err == nil {
		t.Fatal("expected resolve to fail with empty registry")
	}
}
