package server

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"time"

	"labelsheet/internal/app"
	"labelsheet/internal/config"
	"labelsheet/internal/domain/schedule"
	"labelsheet/internal/labels"
	"labelsheet/internal/processing"
	"labelsheet/internal/roster"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

// labelForm is the non-file part of the label sheet form
type labelForm struct {
	Team string `validate:"required"`
	Date string `validate:"omitempty,datetime=2006-01-02"`
}

// ErrorResponse is the JSON body of every failed request
type ErrorResponse struct {
	Error string `json:"error"`
}

// TeamsResponse lists the teams offered by the form
type TeamsResponse struct {
	Teams       []string `json:"teams"`
	DefaultDate string   `json:"default_date"`
}

// Handler serves the label sheet form endpoints
type Handler struct {
	cfg      *app.Config
	job      *processing.LabelJob
	validate *validator.Validate
	now      func() time.Time
}

// NewHandler creates handlers generating through job
func NewHandler(cfg *app.Config, job *processing.LabelJob) *Handler {
	return &Handler{
		cfg:      cfg,
		job:      job,
		validate: validator.New(),
		now:      time.Now,
	}
}

// Health reports that the process is serving
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{"status": "ok"})
}

// Teams returns the configured team list and the default event date
func (h *Handler) Teams(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, TeamsResponse{
		Teams:       h.cfg.Teams,
		DefaultDate: schedule.DefaultEventDate(h.now().UTC()).Format(config.FileNameDateFormat),
	})
}

// GenerateLabels accepts a multipart roster upload and returns the PDF label sheet
func (h *Handler) GenerateLabels(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxUploadBytes)
	if err := r.ParseMultipartForm(h.cfg.MaxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.respondError(w, r, http.StatusRequestEntityTooLarge, fmt.Sprintf("upload exceeds %d bytes", h.cfg.MaxUploadBytes))
			return
		}
		h.respondError(w, r, http.StatusBadRequest, "invalid form: "+err.Error())
		return
	}
	defer r.MultipartForm.RemoveAll()

	form := labelForm{
		Team: strings.TrimSpace(r.FormValue("team")),
		Date: strings.TrimSpace(r.FormValue("date")),
	}
	if err := h.validate.Struct(form); err != nil {
		h.respondError(w, r, http.StatusBadRequest, formMessage(err))
		return
	}
	if !h.cfg.HasTeam(form.Team) {
		h.respondError(w, r, http.StatusBadRequest, "unknown team: "+form.Team)
		return
	}

	date := schedule.DefaultEventDate(h.now().UTC())
	if form.Date != "" {
		parsed, err := time.ParseInLocation(config.FileNameDateFormat, form.Date, time.UTC)
		if err != nil {
			h.respondError(w, r, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}
		date = parsed
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.respondError(w, r, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.respondError(w, r, http.StatusBadRequest, "failed to read upload: "+err.Error())
		return
	}

	format := roster.DetectFormat(header.Filename, data)
	result, err := h.job.Run(r.Context(), format, app.GenerationRequest{
		File: data,
		Team: form.Team,
		Date: date,
	})
	if err != nil {
		status := http.StatusInternalServerError
		if labels.IsUserError(err) {
			status = http.StatusBadRequest
		}
		h.respondError(w, r, status, err.Error())
		return
	}

	doc := result.Document
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": doc.FileName}))
	w.Header().Set("Content-Length", strconv.Itoa(len(doc.Content)))
	w.Header().Set("X-Label-Pages", strconv.Itoa(doc.Pages))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(doc.Content); err != nil {
		log.Warn().Err(err).Str("file_name", doc.FileName).Msg("Failed to write label sheet response")
	}
}

func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, status int, message string) {
	render.Status(r, status)
	render.JSON(w, r, ErrorResponse{Error: message})
}

// formMessage turns validator failures into a single user-facing message
func formMessage(err error) string {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return err.Error()
	}

	fe := fieldErrors[0]
	switch fe.Tag() {
	case "required":
		return strings.ToLower(fe.Field()) + " is required"
	case "datetime":
		return strings.ToLower(fe.Field()) + " must be YYYY-MM-DD"
	default:
		return strings.ToLower(fe.Field()) + " is invalid"
	}
}
