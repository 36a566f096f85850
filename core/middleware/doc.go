// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - Auth: Validates the X-API-Key header to protect endpoints.
//   - RayID: Generates a unique Request ID (RayID) for every incoming request,
//     injecting it into the context and response headers for tracing.
//
// RayID is registered first so every log line of a request carries it.
package middleware
