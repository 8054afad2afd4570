package sysinfo

import (
	"encoding/json"
	"net/http"
	"strconv"
)

// HistoryHandler serves the collected sample history. Accepts an optional
// ?since=<unix seconds> query parameter.
func HistoryHandler(c *Collector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var since int64
		if s := r.URL.Query().Get("since"); s != "" {
			if parsed, err := strconv.ParseInt(s, 10, 64); err == nil {
				since = parsed
			}
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(c.History(since))
	}
}
