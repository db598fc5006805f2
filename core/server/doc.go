// Package server holds the HTTP server configuration.
//
// The start command owns the Fiber application; this package only defines the
// listen port, the optional API key and the shutdown bound, plus validation.
package server
