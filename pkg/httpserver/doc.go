// Package httpserver runs an http.Handler with configured timeouts and shuts
// it down gracefully when the context is cancelled or the process receives
// SIGINT/SIGTERM.
//
//	srv := httpserver.New(cfg.HTTP, log)
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server stopped", logger.Error(err))
//	}
package httpserver
