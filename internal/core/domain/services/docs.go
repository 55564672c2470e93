// Package services contains stateless domain services: business logic that
// spans aggregates and has no identity of its own.
//
// NotificationRouter holds the routing rules that decide which parties are
// told about an order event. Routing is pure: the router produces recipients,
// and the application-layer dispatcher resolves them to channels and delivers.
package services
