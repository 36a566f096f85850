// Package objectstore implements cache.Store on top of S3-compatible object
// storage. Each cache entry is one object, so a namespace can be listed and
// cleared with prefix operations.
package objectstore
