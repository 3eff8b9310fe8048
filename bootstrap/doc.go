// Package bootstrap provides uniform application lifecycle management
// for services hosting the engine loader.
//
// An App owns a component registry and drives it through a fixed
// sequence: start components, run OnStart hooks, ready check, run
// OnReady hooks, block for a shutdown signal, run OnStop hooks, stop
// components in reverse order.
//
//	var cfg config.ServiceConfig
//	if err := config.Load("query-service", &cfg); err != nil { ... }
//
//	app, err := bootstrap.NewApp(&cfg)
//	if err != nil { ... }
//	app.RegisterEngineLoader(loader)
//	app.Run(context.Background())
package bootstrap
