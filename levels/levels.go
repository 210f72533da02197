// Package levels embeds the bundled level catalog.
package levels

import "embed"

// ManifestPath is the catalog location inside FS.
const ManifestPath = "levels.yaml"

//go:embed levels.yaml all:chapter1a all:chapter1b
var FS embed.FS
