// Package manifest exposes the resident definition store over HTTP.
//
// # HTTP Endpoints
//
//   - GET /manifest : Version and entry count of every loaded component.
//   - POST /manifest/reload : Drops the resident store and initialises it again.
//   - GET /manifest/:component/:hash : Raw definition record of one content hash.
//
// Hashes are accepted in unsigned or signed 32-bit form.
package manifest
