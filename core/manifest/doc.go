// Package manifest keeps the static game-content catalog resident.
//
// # Store
//
// Store holds one Table per manifest component (content hash -> raw
// definition). Typed accessors decode a definition on first use and memoise
// it; a miss is an ordinary (nil, false) result.
//
// # Service
//
// Service populates a Store at startup. With a persistent cache it compares
// the stored version marker against the remote descriptor:
//
//   - no marker: download and persist
//   - different marker: clear, download and persist
//   - same marker: import the cached components and verify every requested
//     component is present and non-empty; otherwise clear, download and persist
//
// Components are fetched, read and written concurrently. The version marker
// is written after every component so an interrupted persist is detected as
// corruption on the next start.
//
// Remote failures satisfy errors.Is(err, destiny.ErrRemoteUnavailable).
// Cache write failures are logged and never fail initialisation.
package manifest
