// Package cli provides the interactive Tinylink command-line client.
//
// It wires configuration, local storage, the API client, the link-list
// cache, and an interactive REPL whose commands are gated by route guards:
// dashboard commands require a session, auth commands require its absence.
//
// Key features:
//   - Login / Register / Logout with a persisted session
//   - Shorten a URL (optionally with a custom alias)
//   - List / Update / Watch the link list, refreshed in the background
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App, runREPL, and the guard package for details.
package cli
