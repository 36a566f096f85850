// Package utils provides small conversion helpers shared by the handlers:
// content hash parsing/formatting and loose boolean parsing of query values.
package utils
