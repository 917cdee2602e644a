package batch

import (
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/agbru/humanize/internal/metrics"
)

func writeMetrics(w io.Writer, rec *metrics.Recorder) error {
	resp := httptest.NewRecorder()
	rec.Handler().ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	_, err := io.Copy(w, resp.Body)
	return err
}
