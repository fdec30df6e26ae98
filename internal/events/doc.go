// Package events provides handlers for domain events dispatched through the
// mediator.
//
// Domain entities record events as they mutate; command handlers drain those
// buffers and the application publishes them. The handlers in this package
// consume the published events, currently by writing a structured audit
// trail to the application log.
package events
