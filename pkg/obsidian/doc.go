// Package obsidian provides a client for the Obsidian Local REST API.
//
// The Local REST API plugin exposes the vault over HTTPS on the loopback
// interface with a self-signed certificate. Every request carries the
// plugin's API key as a bearer token. Operations are grouped into services
// hung off Client: ActiveFile, Vault, Periodic, Search, Commands and Open.
// Client.Request is the untyped primitive the services are built on.
package obsidian
