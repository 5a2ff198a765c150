// Package gamedata provides the embedded tower catalog and turns level data
// into playable definitions.
package gamedata

import "embed"

// dataFS embeds the tower index and every level file at build time.
//
//go:embed towers.json levels/*.json levels/*.yaml
var dataFS embed.FS
