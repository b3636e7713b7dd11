// Package http implements the HTTP transport layer of the nft-creator server.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as request tracing, access logging, CORS,
// metrics, and response compression are handled in this package before
// requests are delegated to the service layer.
package http
