package web

import (
	"bytes"
	"fmt"
	"io/fs"
	"net/http"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/JaimeStill/discourse/pkg/routes"
)

// Static returns a handler serving the files under dir in fsys at prefix.
// Directories are not listed. A positive maxAge sets Cache-Control.
func Static(fsys fs.FS, dir, prefix string, maxAge time.Duration) (http.Handler, error) {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("static dir %s: %w", dir, err)
	}

	files := http.FileServerFS(sub)
	cache := ""
	if maxAge > 0 {
		cache = "public, max-age=" + strconv.Itoa(int(maxAge.Seconds()))
	}

	return http.StripPrefix(prefix, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(path.Clean("/"+r.URL.Path), "/")
		info, err := fs.Stat(sub, name)
		if err != nil || info.IsDir() {
			http.NotFound(w, r)
			return
		}
		if cache != "" {
			w.Header().Set("Cache-Control", cache)
		}
		files.ServeHTTP(w, r)
	})), nil
}

// FileRoutes returns GET routes serving each named file from dir at the
// root of the mount. Files are read up front; a missing file is an error.
func FileRoutes(fsys fs.FS, dir string, files ...string) ([]routes.Route, error) {
	out := make([]routes.Route, 0, len(files))
	for _, file := range files {
		data, err := fs.ReadFile(fsys, path.Join(dir, file))
		if err != nil {
			return nil, fmt.Errorf("public file %s: %w", file, err)
		}
		out = append(out, routes.Route{
			Method:  "GET",
			Pattern: "/" + file,
			Handler: func(w http.ResponseWriter, r *http.Request) {
				http.ServeContent(w, r, file, time.Time{}, bytes.NewReader(data))
			},
		})
	}
	return out, nil
}
