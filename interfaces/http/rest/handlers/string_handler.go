package handlers

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"stringanalyzer/application/commands"
	"stringanalyzer/application/commands/bus"
	"stringanalyzer/application/queries"
	querybus "stringanalyzer/application/queries/bus"
	"stringanalyzer/domain/filtering"
	"stringanalyzer/pkg/common"
	apperrors "stringanalyzer/pkg/errors"
	"stringanalyzer/pkg/utils"
)

// StringHandler handles string analysis HTTP requests
type StringHandler struct {
	commandBus   *bus.CommandBus
	queryBus     *querybus.QueryBus
	errorHandler *apperrors.ErrorHandler
	logger       *zap.Logger
	maxBodyBytes int64
}

// NewStringHandler creates a new string handler
func NewStringHandler(
	commandBus *bus.CommandBus,
	queryBus *querybus.QueryBus,
	errorHandler *apperrors.ErrorHandler,
	logger *zap.Logger,
	maxBodyBytes int64,
) *StringHandler {
	return &StringHandler{
		commandBus:   commandBus,
		queryBus:     queryBus,
		errorHandler: errorHandler,
		logger:       logger,
		maxBodyBytes: maxBodyBytes,
	}
}

// AnalyzeStringRequest represents the request body for analyzing a string.
// Value is a pointer so a missing field can be told apart from an explicit
// empty string, which is a legal value.
type AnalyzeStringRequest struct {
	Value *string `json:"value" validate:"required"`
}

// AnalyzeString handles POST /strings
func (h *StringHandler) AnalyzeString(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeStringRequest
	if err := common.DecodeJSON(w, r, &req, h.maxBodyBytes); err != nil {
		h.errorHandler.Handle(w, r, apperrors.NewValidationError("invalid request body: "+err.Error()))
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		h.errorHandler.Handle(w, r, apperrors.NewValidationError(err.Error()))
		return
	}

	cmd := commands.AnalyzeStringCommand{Value: *req.Value}
	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	result, err := h.queryBus.Ask(r.Context(), queries.GetStringQuery{Value: *req.Value})
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusCreated, result)
}

// GetString handles GET /strings/{value}
func (h *StringHandler) GetString(w http.ResponseWriter, r *http.Request) {
	value := pathValue(r)

	result, err := h.queryBus.Ask(r.Context(), queries.GetStringQuery{Value: value})
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}

// ListStrings handles GET /strings with optional structured filters.
// Malformed filter values are rejected; unknown query parameters are
// ignored.
func (h *StringHandler) ListStrings(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilterParams(r)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	result, err := h.queryBus.Ask(r.Context(), queries.ListStringsQuery{Filter: filter})
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}

// FilterByNaturalLanguage handles GET /strings/filter-by-natural-language
func (h *StringHandler) FilterByNaturalLanguage(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	result, err := h.queryBus.Ask(r.Context(), queries.NaturalLanguageQuery{Query: query})
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}

// DeleteString handles DELETE /strings/{value}
func (h *StringHandler) DeleteString(w http.ResponseWriter, r *http.Request) {
	value := pathValue(r)

	cmd := commands.DeleteStringCommand{Value: value}
	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// pathValue extracts the {value} URL parameter, undoing percent-encoding
// so values with spaces or slashes round-trip.
func pathValue(r *http.Request) string {
	raw := chi.URLParam(r, "value")
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}

// parseFilterParams builds a FilterSpec from query parameters.
func parseFilterParams(r *http.Request) (filtering.FilterSpec, error) {
	var filter filtering.FilterSpec
	params := r.URL.Query()

	if raw := params.Get("is_palindrome"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return filter, apperrors.NewValidationError("is_palindrome must be a boolean")
		}
		filter.IsPalindrome = &v
	}

	for _, p := range []struct {
		name   string
		target **int
	}{
		{"min_length", &filter.MinLength},
		{"max_length", &filter.MaxLength},
		{"word_count", &filter.WordCount},
	} {
		raw := params.Get(p.name)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return filter, apperrors.NewValidationError(p.name + " must be a non-negative integer")
		}
		*p.target = &n
	}

	if raw := params.Get("contains_character"); raw != "" {
		if len([]rune(raw)) != 1 {
			return filter, apperrors.NewValidationError("contains_character must be a single character")
		}
		filter.ContainsCharacter = &raw
	}

	return filter, nil
}
