package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static/*
var Assets embed.FS

// StaticFS returns the browser client's files.
func StaticFS() http.FileSystem {
	sub, err := fs.Sub(Assets, "static")
	if err != nil {
		return http.FS(embed.FS{})
	}
	return http.FS(sub)
}

// IndexHTML returns the single-page board.
func IndexHTML() []byte {
	data, err := Assets.ReadFile("static/index.html")
	if err != nil {
		return nil
	}
	return data
}
