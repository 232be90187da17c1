package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/DukeRupert/pagekit/internal/domain"
	"github.com/DukeRupert/pagekit/internal/metrics"
	"github.com/DukeRupert/pagekit/internal/pagination"
	"github.com/DukeRupert/pagekit/internal/settings"
)

// maxDisplayedPagesLimit bounds the number of numbered items one request
// can ask for.
const maxDisplayedPagesLimit = 100

// PagingHandler serves paging plans computed from query parameters.
type PagingHandler struct {
	resolver       settings.Resolver
	defaultProfile string
	profiles       map[string]bool
	logger         *slog.Logger
}

// NewPagingHandler creates a handler that resolves missing inputs through r.
// knownProfiles bounds the profile label used in metrics; other names are
// still resolved but reported as "other".
func NewPagingHandler(r settings.Resolver, defaultProfile string, knownProfiles []string, logger *slog.Logger) *PagingHandler {
	if defaultProfile == "" {
		defaultProfile = settings.DefaultProfile
	}
	profiles := map[string]bool{defaultProfile: true, settings.DefaultProfile: true}
	for _, p := range knownProfiles {
		profiles[p] = true
	}
	return &PagingHandler{
		resolver:       r,
		defaultProfile: defaultProfile,
		profiles:       profiles,
		logger:         logger,
	}
}

// RegisterRoutes registers paging routes on the mux.
func (h *PagingHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/paging", h.Plan)
}

// Plan handles GET /api/paging.
//
// Recognised parameters: page, size, total, max, gap, profile, query,
// page_key, size_key and the boolean toggles listed in boolParams.
func (h *PagingHandler) Plan(w http.ResponseWriter, r *http.Request) {
	const op = "paging.plan"
	q := r.URL.Query()

	profile := q.Get("profile")
	if profile == "" {
		profile = h.defaultProfile
	}
	label := h.profileLabel(profile)

	var ve *domain.ValidationError
	fieldErr := func(field, message string) {
		if ve == nil {
			ve = domain.NewValidationError(op, field, message)
			return
		}
		ve = domain.AddFieldError(ve, field, message)
	}

	explicit := pagination.State{
		CurrentPage:       intParam(q.Get("page"), "page", fieldErr),
		PageSize:          intParam(q.Get("size"), "size", fieldErr),
		TotalRecords:      intParam(q.Get("total"), "total", fieldErr),
		MaxDisplayedPages: intParam(q.Get("max"), "max", fieldErr),
		GapSize:           intParam(q.Get("gap"), "gap", fieldErr),
	}

	overrides := settings.Overrides{
		Query:   q.Get("query"),
		PageKey: q.Get("page_key"),
		SizeKey: q.Get("size_key"),
	}
	for name, dst := range boolParams(&overrides) {
		raw := q.Get(name)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseBool(raw)
		if err != nil {
			fieldErr(name, "must be true or false")
			continue
		}
		*dst = &v
	}

	if ve != nil {
		metrics.PlanRejected(label)
		ValidationErrorResponse(w, r, h.logger, ve)
		return
	}

	var stateOpts []settings.StateOption
	if q.Get("gap") != "" {
		stateOpts = append(stateOpts, settings.ExplicitGap())
	}
	state := settings.ResolveState(h.resolver, profile, explicit, stateOpts...)
	if state.MaxDisplayedPages > maxDisplayedPagesLimit {
		metrics.PlanRejected(label)
		ValidationErrorResponse(w, r, h.logger,
			domain.NewValidationError(op, "max", "must be at most "+strconv.Itoa(maxDisplayedPagesLimit)))
		return
	}
	opts := settings.ResolveOptions(h.resolver, profile, overrides)

	plan, err := pagination.NewPlan(state, opts)
	if err != nil {
		metrics.PlanRejected(label)
		ValidationErrorResponse(w, r, h.logger, domain.FromPaging(op, err))
		return
	}

	metrics.PlanComputed(label, plan)
	h.logger.Debug("paging plan computed",
		"profile", profile,
		"page", plan.State.CurrentPage,
		"total_pages", plan.TotalPages,
		"items", len(plan.Items),
	)

	writeJSON(w, http.StatusOK, plan)
}

func (h *PagingHandler) profileLabel(profile string) string {
	if h.profiles[profile] {
		return profile
	}
	return "other"
}

// boolParams maps query parameter names to the override flags they set.
func boolParams(o *settings.Overrides) map[string]**bool {
	return map[string]**bool{
		"show_first_last":          &o.ShowFirstLast,
		"show_prev_next":           &o.ShowPrevNext,
		"show_page_size_nav":       &o.ShowPageSizeNav,
		"show_total_pages":         &o.ShowTotalPages,
		"show_total_records":       &o.ShowTotalRecords,
		"show_first_numbered_page": &o.ShowFirstNumberedPage,
		"show_last_numbered_page":  &o.ShowLastNumberedPage,
		"clamp_window":             &o.ClampWindow,
	}
}

// intParam parses an optional non-negative integer. Missing values are 0,
// which the settings cascade treats as unset.
func intParam(raw, field string, fieldErr func(field, message string)) int {
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		fieldErr(field, "must be a whole number")
		return 0
	}
	if n < 0 {
		fieldErr(field, "must not be negative")
		return 0
	}
	return n
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
