// Package repo holds the ent-generated client for the schemas defined
// in internal/schema. Run `go generate ./internal/repo` after changing
// any schema.
package repo

//go:generate go run -mod=mod entgo.io/ent/cmd/ent generate --target . --feature sql/upsert ../schema
