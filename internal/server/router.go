package server

import "net/http"

// NewHandler wires the routes of s behind the request logger.
func NewHandler(s *ServerContext) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/placemarks", s.HandlePlacemarks)
	mux.HandleFunc("GET /"+KMLRoute(s.Config), s.HandleKML)
	mux.HandleFunc("GET /", s.HandleIndex)

	return RequestLogger(mux)
}
