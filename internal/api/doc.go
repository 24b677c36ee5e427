// Package api exposes prompt dispatch over HTTP. It decodes and validates
// requests, calls the configured generation.Generator and maps its errors to
// status codes without leaking upstream details to clients.
package api
