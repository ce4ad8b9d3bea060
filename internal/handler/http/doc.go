// Package http implements the HTTP transport layer of the platform services.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as authentication, authorization, request
// tracing, and access logging are handled in this package before requests are
// delegated to the service layer.
//
// Two authentication modes are supported on every protected route: signed
// service-to-service credentials (the x-service-* headers) and end-user
// bearer tokens. The presence of the x-service-id header selects the mode.
package http
