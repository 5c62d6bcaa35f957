package formhttp

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

// IsDataStar reports whether the request comes from a DataStar client:
// it accepts an event stream, carries the datastar query parameter or uses
// the DataStar content type.
func IsDataStar(r *http.Request) bool {
	if strings.Contains(r.Header.Get("Accept"), "text/event-stream") {
		return true
	}
	if r.URL.Query().Has("datastar") {
		return true
	}
	return strings.Contains(r.Header.Get("Content-Type"), "application/x-datastar")
}

// renderTempl sends an SSE element patch to DataStar clients and plain HTML
// otherwise. Signals, when given, are patched after the element and only for
// DataStar clients.
func renderTempl(w http.ResponseWriter, r *http.Request, c templ.Component, selector string, signals map[string]any) error {
	if IsDataStar(r) {
		sse := datastar.NewSSE(w, r)
		if err := sse.PatchElementTempl(c,
			datastar.WithSelector(selector),
			datastar.WithMode(datastar.ElementPatchModeOuter),
		); err != nil {
			return err
		}
		if len(signals) == 0 {
			return nil
		}
		data, err := json.Marshal(signals)
		if err != nil {
			return err
		}
		return sse.PatchSignals(data)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return c.Render(r.Context(), w)
}
