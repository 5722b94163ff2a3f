// Package mockapi is an in-process simulator for the GUID lifecycle API.
//
// A Registry implements http.RoundTripper and is installed as the transport
// of an http.Client whenever the configured endpoint uses the mock:// scheme.
// Intercepted requests never reach the network; responses are synthesized
// from the request alone, deterministically and statelessly.
//
// Simulated contract:
//
//	POST   /guid        create, server-assigned id
//	POST   /guid/<id>   create with caller id, or update
//	GET    /guid/<id>   read
//	DELETE /guid/<id>   delete (empty body)
//
// The status code is a pure function of the id's first character: '9' yields
// 503, '8' yields 404, anything else 200. This makes client error paths
// exercisable without a faulty server.
package mockapi
