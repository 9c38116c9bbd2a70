// Package api exposes the shared settings over a small read-only HTTP API.
package api
