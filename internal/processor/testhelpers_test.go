package processor

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/woozymasta/motopark/internal/config"
)

const sampleCollection = `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "id": "VW_ON_STREET_PARKING.1",
     "geometry": {"type": "Point", "coordinates": [114.1694, 22.3193]},
     "properties": {"STREET_NAME_TC": "彌敦道", "VEHICLE_TYPE": "Motor Cycles"}},
    {"type": "Feature", "id": "VW_ON_STREET_PARKING.2",
     "geometry": {"type": "Point", "coordinates": [114.2, 22.28]},
     "properties": {"STREET_NAME_TC": "軒尼詩道", "VEHICLE_TYPE": "Motor Cycles"}},
    {"type": "Feature", "id": "VW_ON_STREET_PARKING.3",
     "geometry": {"type": "Point", "coordinates": [113.9385712, 22.2845671]},
     "properties": {"STREET_NAME_TC": "東涌道", "VEHICLE_TYPE": "Motor Cycles"}}
  ]
}`

// newFeedServer serves body with status and records the last request.
func newFeedServer(t *testing.T, status int, body string, last **http.Request) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if last != nil {
			*last = r.Clone(r.Context())
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	return srv
}

// testConfig points the default feed at srv and the output into a temp dir.
func testConfig(t *testing.T, srv *httptest.Server, output string) *config.Config {
	t.Helper()

	cfg := config.Default()
	cfg.Feed.BaseURL = srv.URL + "/api/drss/layer/map/"
	cfg.Output = output
	return cfg
}
