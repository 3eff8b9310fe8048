// Package testutil provides testing infrastructure for the engine loader.
//
// It supplies in-memory fakes for the loader's runtime and filesystem
// seams, so loader behavior (caching, retry, sequencing) can be tested
// without real WebAssembly binaries, plus artifact tree builders and a
// component lifecycle helper integrated with testing.T.
//
// # Quick Start
//
//	rt := testutil.NewFakeRuntime()
//	fs := testutil.NewMapFS()
//	fs.Put("/engines/postgresql/query_engine.wasm", []byte("fake"))
//
//	loader, _ := engine.NewLoader(cfg,
//	    engine.WithRuntime(rt),
//	    engine.WithFS(fs),
//	)
package testutil
