// Package server is the HTTP transport boundary: it serves the chat UI page
// and a small JSON API on top of the dispatcher and the session registry.
// Every chat response is a value with a "success" flag; an outermost recover
// turns even a panicking handler into such a value, so the process never
// crashes on a request.
package server
