// Package api handles incoming HTTP requests, request validation, and
// response formatting. It acts as an adapter between external clients and
// the internal application services, translating service errors to HTTP
// status codes and safe client-facing messages.
package api
