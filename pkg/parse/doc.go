// Package parse provides the client for the remote discourse-parsing service.
//
// The service is a black box reachable over HTTP, typically a notebook-hosted
// model exposed through a tunnel. Its whole contract is a single endpoint:
//
//	POST <base-url>/parse
//	{"text": "<passage>"}
//
// returning a JSON logic tree decodable as a [logic.Node]. Any non-200
// response or transport failure surfaces as a single opaque error; there is
// no partial result.
//
// The client layers the usual infrastructure around that contract: request
// retries with exponential backoff for transient failures, response caching
// keyed by the input text, and default headers (including the tunnel
// bypass header the hosted service expects).
package parse
