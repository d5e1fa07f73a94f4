// Package source resolves a rules document location into text. Locations
// with an http or https scheme are fetched with a single GET; anything else is
// read from the filesystem.
package source
