package template

import (
	"embed"
	"io/fs"
)

//go:embed all:assets
var embedded embed.FS

// Assets returns the built-in catalog and templates rooted at the assets
// directory.
func Assets() fs.FS {
	sub, err := fs.Sub(embedded, "assets")
	if err != nil {
		panic(err)
	}
	return sub
}

// CatalogFile is the catalog path inside Assets.
const CatalogFile = "catalog.yaml"
