// Package preview serves a built site directory locally with live
// reload. It is the engine behind "weft serve": a chi router exposing
// the site, a health endpoint, Prometheus metrics, and a WebSocket
// endpoint that pushes reload notifications when files change.
//
// # Usage
//
//	srv, err := preview.New("dist",
//	    preview.WithAddr("localhost:8080"),
//	    preview.WithLogger(logger),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := srv.Start(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// Start blocks until the context is cancelled, then shuts the server
// down gracefully.
package preview
