// Package server provides the iconforge preview UI and HTTP API.
// Icons are rendered in-memory per request; nothing is written to disk.
package server

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"strings"

	"github.com/xob0t/iconforge/pkg/icon"
)

//go:embed web/*
var webContent embed.FS

// RunServe starts the preview server on the given port.
func RunServe(args []string) error {
	port := "8080"
	for i, a := range args {
		if (a == "--port" || a == "-p") && i+1 < len(args) {
			port = args[i+1]
		}
	}

	webFS, err := fs.Sub(webContent, "web")
	if err != nil {
		return fmt.Errorf("embed web: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.FS(webFS)))
	mux.HandleFunc("/icons/", handleIcon)
	mux.HandleFunc("/api/config", handleConfig)

	addr := ":" + port
	log.Printf("iconforge preview on http://localhost%s", addr)
	return http.ListenAndServe(addr, mux)
}

// handleIcon serves one icon as PNG at /icons/icon<SIZE>.png. Query params:
// color, style, label, encoder.
func handleIcon(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, "/icons/")
	var size int
	if _, err := fmt.Sscanf(name, "icon%d.png", &size); err != nil || name != icon.Filename(size) {
		http.NotFound(w, r)
		return
	}
	if size <= 0 || size > 1024 {
		http.Error(w, fmt.Sprintf("invalid size %d", size), http.StatusBadRequest)
		return
	}

	q := r.URL.Query()
	encoder, err := icon.ParseEncoder(q.Get("encoder"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	style, err := icon.ParseStyle(q.Get("style"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	cfg := icon.Config{
		Size:    size,
		Color:   q.Get("color"),
		Style:   style,
		Label:   q.Get("label"),
		Encoder: encoder,
	}

	var buf bytes.Buffer
	if err := icon.GenerateToWriter(&buf, ".png", cfg); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(buf.Bytes())
}

// handleConfig returns the default generation parameters as JSON.
func handleConfig(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"sizes":   icon.DefaultSizes,
		"color":   icon.DefaultColor,
		"style":   string(icon.StyleSolid),
		"encoder": string(icon.EncoderRaw),
	})
}
