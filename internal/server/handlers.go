// Package server serves the generated KML and a map viewer for it.
package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/woozymasta/motopark/internal/processor"

	"github.com/rs/zerolog/log"
)

const (
	etagCap     = 64
	kmlMimeType = "application/vnd.google-earth.kml+xml"
)

// HandleIndex serves the main HTML application.
func (s *ServerContext) HandleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" && strings.Contains(r.URL.Path, ".") {
		http.NotFound(w, r)
		return
	}

	if match := r.Header.Get("If-None-Match"); match == s.IndexETag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("ETag", s.IndexETag)
	w.Header().Set("Cache-Control", "public, no-cache")
	_, _ = w.Write(s.IndexHTML)
}

// HandleKML serves the KML file written by the converter.
func (s *ServerContext) HandleKML(w http.ResponseWriter, r *http.Request) {
	if !s.serveFile(w, r, s.KMLPath, kmlMimeType) {
		http.NotFound(w, r)
	}
}

// HandlePlacemarks serves the placemarks of the KML file as JSON, each with
// its navigation links. The encoded body is cached until the file changes.
func (s *ServerContext) HandlePlacemarks(w http.ResponseWriter, r *http.Request) {
	info, err := os.Stat(s.KMLPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Error().Err(err).Str("path", s.KMLPath).Msg("Failed to stat KML file")
		}
		writeJSONError(w, http.StatusServiceUnavailable, "placemarks are not generated yet")
		return
	}

	etag := fileETag(info)
	if match := r.Header.Get("If-None-Match"); match == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	body, err := s.placemarksJSON(etag)
	if err != nil {
		log.Error().Err(err).Str("path", s.KMLPath).Msg("Failed to read KML file")
		writeJSONError(w, http.StatusInternalServerError, "failed to read placemarks")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "public, no-cache")
	_, _ = w.Write(body)
}

func (s *ServerContext) placemarksJSON(etag string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cache.etag == etag {
		return s.cache.body, nil
	}

	placemarks, err := processor.ReadKMLFile(s.KMLPath)
	if err != nil {
		return nil, err
	}

	markers := make([]Marker, 0, len(placemarks))
	for _, p := range placemarks {
		markers = append(markers, Marker{
			Placemark: p,
			Links:     NavigationLinks(p.Lat, p.Lon, p.Name),
		})
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(markers); err != nil {
		return nil, err
	}

	log.Debug().Int("placemarks", len(markers)).Str("etag", etag).Msg("Placemarks cache refreshed")

	s.cache = placemarkCache{etag: etag, body: buf.Bytes()}
	return s.cache.body, nil
}

// serveFile tries to serve a file from disk with ETag generation.
// It returns true if the file was found and served (or 304).
func (s *ServerContext) serveFile(w http.ResponseWriter, r *http.Request, path string, contentType string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	if info.IsDir() {
		return false
	}

	etag := fileETag(info)

	// check If-None-Match (client sent ETag)
	if match := r.Header.Get("If-None-Match"); match == etag {
		w.WriteHeader(http.StatusNotModified)
		return true
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "public, no-cache")

	if contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}

	http.ServeFile(w, r, path)
	return true
}

func fileETag(info os.FileInfo) string {
	buf := make([]byte, 0, etagCap)
	buf = append(buf, '"')
	buf = strconv.AppendInt(buf, info.Size(), 16)
	buf = append(buf, '-')
	buf = strconv.AppendInt(buf, info.ModTime().UnixNano(), 16)
	buf = append(buf, '"')
	return string(buf)
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
