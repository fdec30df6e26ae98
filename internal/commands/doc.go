// Package commands defines one command/handler pair per use case. A command
// is an immutable data record naming an intended operation; its handler
// orchestrates entity mutation and repository calls. Handlers are
// constructed once at startup with their concrete dependencies and routed to
// by the mediator.
package commands
