// Package server holds the HTTP server configuration.
//
// The Config struct defines the HTTP port and the API key protecting every
// route except the swagger documentation.
package server
