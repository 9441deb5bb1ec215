package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/kozaktomas/people-page/internal/export"
	"github.com/kozaktomas/people-page/internal/people"
)

// Export downloads the visible people as an xlsx workbook. It takes the same
// query parameters as the page.
func (h *PeopleHandler) Export(w http.ResponseWriter, r *http.Request) {
	criteria := people.CriteriaFromQuery(r.URL.Query())
	view := h.page.View(criteria)

	switch {
	case view.Loading:
		respondError(w, http.StatusServiceUnavailable, errStillLoading)
		return
	case view.Error:
		respondError(w, http.StatusBadGateway, errLoadFailed)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, view.People); err != nil {
		h.log.Error("exporting people",
			zap.String("query", r.URL.RawQuery),
			zap.Error(err))
		respondError(w, http.StatusInternalServerError, errLoadFailed)
		return
	}

	filename := fmt.Sprintf("people_%s.xlsx", time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", export.XLSXContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
