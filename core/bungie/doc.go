// Package bungie is the HTTP client for the Bungie.net platform API.
//
// It implements manifest.Remote (manifest descriptor and component
// download) and fetches account snapshots with an OAuth bearer token.
// Every failure is returned as a destiny.RemoteError, so callers can test
// errors.Is(err, destiny.ErrRemoteUnavailable).
//
// Requests are throttled with a token bucket. When the platform answers with
// ThrottleSeconds, following requests wait that long.
//
// # Usage
//
//	client, err := bungie.NewClient(cfg.Bungie)
//	desc, err := client.FetchManifestDescriptor(ctx)
package bungie
