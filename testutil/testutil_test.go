package testutil

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/skillsenselab/enginekit/component"
	"github.com/skillsenselab/enginekit/engine"
	"github.com/skillsenselab/enginekit/provider"
)

func TestFakeRuntimeCompileCounting(t *testing.T) {
	rt := NewFakeRuntime()
	ctx := context.Background()

	if _, err := rt.Compile(ctx, []byte("a")); err != nil {
		t.Fatalf("unexpected compile error: %v", err)
	}
	if _, err := rt.Compile(ctx, []byte("b")); err != nil {
		t.Fatalf("unexpected compile error: %v", err)
	}
	if rt.Compiles() != 2 {
		t.Errorf("expected 2 compiles, got %d", rt.Compiles())
	}
}

func TestFakeRuntimeCompileError(t *testing.T) {
	rt := NewFakeRuntime()
	rt.CompileErr = errors.New("bad magic")

	if _, err := rt.Compile(context.Background(), []byte("x")); err == nil {
		t.Fatal("expected compile error")
	}

	rt.CompileErr = nil
	if _, err := rt.Compile(context.Background(), []byte("x")); err != nil {
		t.Fatalf("expected retry to succeed, got %v", err)
	}
}

func TestFakeCompiledInstantiate(t *testing.T) {
	rt := NewFakeRuntime()
	ctx := context.Background()

	compiled, err := rt.Compile(ctx, []byte("x"))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	inst, err := compiled.Instantiate(ctx, nil)
	if err != nil {
		t.Fatalf("instantiate: %v", err)
	}
	if _, ok := inst.Exports().Function(engine.StartFunction); !ok {
		t.Error("expected default table to export the start function")
	}
	if rt.Instantiations() != 1 {
		t.Errorf("expected 1 instantiation, got %d", rt.Instantiations())
	}
	if len(rt.Instances()) != 1 {
		t.Fatalf("expected 1 tracked instance, got %d", len(rt.Instances()))
	}

	if err := inst.Close(ctx); err != nil {
		t.Fatalf("close: %v", err)
	}
	if rt.Instances()[0].Closed() != 1 {
		t.Error("expected instance close to be recorded")
	}
}

func TestFakeRuntimeFailStart(t *testing.T) {
	rt := NewFakeRuntime()
	rt.FailStart(errors.New("panic in start"))
	ctx := context.Background()

	compiled, _ := rt.Compile(ctx, []byte("x"))
	inst, err := compiled.Instantiate(ctx, nil)
	if err != nil {
		t.Fatalf("instantiate: %v", err)
	}
	start, ok := inst.Exports().Function(engine.StartFunction)
	if !ok {
		t.Fatal("missing start export")
	}
	if _, err := start.Call(ctx); err == nil {
		t.Fatal("expected start to fail")
	}
}

func TestFakeExportTableDrop(t *testing.T) {
	table := NewFakeExportTable("query", "version").Drop("version")
	if _, ok := table.Function("version"); ok {
		t.Error("expected version to be dropped")
	}
	if _, ok := table.Function("query"); !ok {
		t.Error("expected query to remain")
	}
}

func TestMapFSRecordsAccesses(t *testing.T) {
	fs := NewMapFS()
	fs.PutArtifact("/engines", provider.PostgreSQL, []byte("wasm"))

	path := filepath.Join("/engines", "postgresql", engine.DefaultArtifactName)
	if !fs.Exists(path) {
		t.Fatal("expected artifact to exist")
	}
	content, err := fs.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(content) != "wasm" {
		t.Errorf("unexpected content %q", content)
	}
	if fs.Accesses() != 2 {
		t.Errorf("expected 2 recorded accesses, got %d", fs.Accesses())
	}
	if fs.Reads(path) != 1 {
		t.Errorf("expected 1 read, got %d", fs.Reads(path))
	}
}

func TestMapFSMissingFile(t *testing.T) {
	fs := NewMapFS()
	if fs.Exists("/nope") {
		t.Error("expected missing path")
	}
	if _, err := fs.ReadFile("/nope"); !os.IsNotExist(err) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestWriteArtifact(t *testing.T) {
	root := t.TempDir()
	path := WriteArtifact(t, root, provider.SQLite, EmptyWasmModule)

	want := filepath.Join(root, "sqlite", engine.DefaultArtifactName)
	if path != want {
		t.Errorf("expected path %s, got %s", want, path)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(content) != len(EmptyWasmModule) {
		t.Errorf("unexpected content length %d", len(content))
	}
}

type fakeComponent struct {
	started bool
	stopped bool
}

func (f *fakeComponent) Name() string { return "fake" }

func (f *fakeComponent) Start(ctx context.Context) error { f.started = true; return nil }

func (f *fakeComponent) Stop(ctx context.Context) error { f.stopped = true; return nil }

func (f *fakeComponent) Health(ctx context.Context) component.Health {
	return component.Health{Name: "fake", Status: component.StatusHealthy}
}

func TestSetupReturnsCleanup(t *testing.T) {
	c := &fakeComponent{}
	cleanup, err := Setup(c)
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	if !c.started {
		t.Error("expected component to be started")
	}
	if err := cleanup(); err != nil {
		t.Fatalf("cleanup: %v", err)
	}
	if !c.stopped {
		t.Error("expected component to be stopped")
	}
}
