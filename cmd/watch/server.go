package main

import (
	"io"
	"mime"
	"net/http"
	"os"
	"path"
	"strings"

	"github.com/go-git/go-billy/v5"
)

const lastUpdatedHeader = "Sourcelink-Last-Updated"

func (p *pageServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	name := strings.TrimPrefix(path.Clean("/"+r.URL.Path), "/")
	if name == "" {
		name = p.indexPath
	}
	contents, err := readFile(p.fs, name)
	switch {
	case err == nil:
	case os.IsNotExist(err):
		http.NotFound(w, r)
		return
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set(lastUpdatedHeader, p.lastUpdated)
	if contentType := mime.TypeByExtension(path.Ext(name)); contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}
	_, _ = w.Write(contents)
}

func readFile(fs billy.Filesystem, name string) ([]byte, error) {
	file, err := fs.Open(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(file)
}
