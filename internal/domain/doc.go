// Package domain contains the core business model of the application: the
// User, Category, and Task aggregates, the validated value objects they are
// built from, and the events their mutations produce. It is independent of
// any specific infrastructure or delivery mechanism.
package domain
