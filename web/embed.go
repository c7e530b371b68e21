package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed views/*.html
var viewsFS embed.FS

//go:embed static
var staticFS embed.FS

// Views exposes the page templates with "index" naming views/index.html.
func Views() http.FileSystem {
	return subFS(viewsFS, "views")
}

// Static exposes the browser assets served under /static.
func Static() http.FileSystem {
	return subFS(staticFS, "static")
}

func subFS(root embed.FS, dir string) http.FileSystem {
	sub, err := fs.Sub(root, dir)
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
