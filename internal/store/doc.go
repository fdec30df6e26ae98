// Package store defines the persistence contracts consumed by the command
// handlers: one repository interface per aggregate plus the sentinel errors
// their implementations report. Concrete storage lives in
// internal/platform/postgres.
package store
