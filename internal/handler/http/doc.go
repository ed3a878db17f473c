// Package http implements the HTTP transport of the secure-data gateway.
//
// The host runtime posts pipeline events to the gateway; the acting user is
// taken from the bearer token, never from the event body. Tracing, access
// logging, compression and response signing are handled here before the
// event reaches the service layer.
package http
