package report

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/gallery-tools/exhibit-atlas/pkg/adapters"
	"github.com/gallery-tools/exhibit-atlas/pkg/models/api"
	"github.com/gallery-tools/exhibit-atlas/pkg/models/domain"
	reportsvc "github.com/gallery-tools/exhibit-atlas/pkg/services/report"
)

const docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// Generator is the generation boundary the handler depends on.
type Generator interface {
	Generate(ctx context.Context, data domain.ReportData, w io.Writer) error
}

type Handler struct {
	generator Generator
}

func NewHandler(generator Generator) *Handler {
	return &Handler{generator: generator}
}

// CreateReport accepts a ReportData JSON body and responds with the
// generated .docx document.
func (h *Handler) CreateReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var payload api.ReportData
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid report payload", http.StatusBadRequest)
		return
	}

	data := adapters.MapApiReportToDomain(payload)

	// Generate into a buffer first so a mid-generation failure never
	// leaves a truncated body behind a 200 status.
	var buf bytes.Buffer
	if err := h.generator.Generate(ctx, data, &buf); err != nil {
		if errors.Is(err, reportsvc.ErrMissingTitle) {
			http.Error(w, "exhibition_title is required", http.StatusBadRequest)
			return
		}
		logger.Error().Err(err).Msg("failed to generate report")
		http.Error(w, "failed to generate report", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", docxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="report.docx"`)
	if _, err := buf.WriteTo(w); err != nil {
		logger.Error().Err(err).Msg("failed to stream report")
	}
}

// ExportReport responds with the JSON projection of the report data, image
// paths stripped.
func (h *Handler) ExportReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var payload api.ReportData
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid report payload", http.StatusBadRequest)
		return
	}

	export := adapters.MapDomainReportToExport(adapters.MapApiReportToDomain(payload))

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(export); err != nil {
		logger.Error().Err(err).Msg("failed to encode report export")
	}
}
