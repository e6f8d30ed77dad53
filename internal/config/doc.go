// Package config implements configuration resolution for the qec toolchain.
//
// A Config is assembled by applying builders in precedence order: compiled-in
// defaults, then environment variables, then command-line flags. Later
// builders overwrite earlier ones field by field, except list-valued fields
// (plugin paths), which accumulate in application order, and optional fields
// a later builder leaves unset, which never clear earlier values.
//
// Once input type and emit action are resolved the value is registered with
// a Registry keyed by session ID and must be treated as read-only by all
// consumers.
package config
