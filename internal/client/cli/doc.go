// Package cli provides the interactive storefront command-line client.
//
// It wires configuration, the local session database, the HTTP API client,
// and an interactive REPL. The session cookie is managed by the API client;
// this package only ever sees the cached public user.
//
// Key features:
//   - Register / Login / Logout
//   - Show the cached or freshly fetched profile, edit it
//   - Admin user management: list and remove accounts
//   - A local cart tied to the current session
//
// Whenever the server rejects a call with 401, the cached session state is
// wiped before the command reports its error, so the prompt immediately
// reflects the logged-out state.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
