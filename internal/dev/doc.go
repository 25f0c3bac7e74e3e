// Package dev provides live reload for the admin server in development mode.
//
// Two pieces cooperate:
//
//   - Watcher polls the legal documents directory and reports created,
//     modified, and removed files.
//   - ReloadServer keeps the browsers' WebSocket connections and tells them
//     to reload.
//
// # Usage
//
//	hub := dev.NewReloadServer(logger)
//	w := dev.NewWatcher(dev.WatcherConfig{Paths: []string{"public/pdf"}})
//	w.OnChange(func(dev.Change) { hub.NotifyReload() })
//	go w.Start(ctx)
//
// # Reload Protocol
//
// The browser connects to /_admin/reload via WebSocket.
// Messages are JSON-encoded:
//
//	{"type": "reload"}                 // Triggers full page reload
//	{"type": "error", "error": "..."} // Logs a server side error
package dev
