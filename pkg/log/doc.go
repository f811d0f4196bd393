// Package log is the structured logging layer shared by the RPC client and the node supervisor.
//
// Loggers are passed explicitly or carried in a context:
//
//	lg := log.NewZapLogger(log.Config{Format: "logfmt", Level: log.LevelDebug})
//	ctx = log.SetContextLogger(ctx, lg.WithName("corepc"))
//	log.FromContext(ctx).Info("node ready", "rpc", rpcURL)
//
// If the context holds an OpenTelemetry span, SetContextLogger wraps the logger in a SpanLogger
// so entries are also recorded as span events. Error and Fatal entries mark the span failed.
//
// Environment (read with cleanenv into Config):
//
//   - COREPC_LOG_FORMAT: console, logfmt or json
//   - COREPC_LOG_LEVEL: debug, info, warn, error or fatal
//   - COREPC_LOG_OUTPUT: stderr, stdout or a file path
package log
