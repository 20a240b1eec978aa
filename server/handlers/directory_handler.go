package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"

	"github.com/Kent-Taylor/Tree-services-directory/directory"
	"github.com/Kent-Taylor/Tree-services-directory/models"
	"github.com/Kent-Taylor/Tree-services-directory/schema"
	services "github.com/Kent-Taylor/Tree-services-directory/service"
	"github.com/Kent-Taylor/Tree-services-directory/util"
)

const (
	Q_QUERY_ARG         = "q"
	AREA_QUERY_ARG      = "area"
	SERVICE_QUERY_ARG   = "service"
	CHIP_QUERY_ARG      = "chip"
	SORT_QUERY_ARG      = "sort"
	PAGE_QUERY_ARG      = "page"
	PAGE_SIZE_QUERY_ARG = "pageSize"
)

// listResponse is the JSON shape of the list endpoint: one page of records
// plus everything the host page needs to render controls and the summary.
type listResponse struct {
	Items      []models.BusinessRecord `json:"items"`
	Total      int                     `json:"total"`
	TotalPages int                     `json:"total_pages"`
	Page       int                     `json:"page"`
	PageSize   int                     `json:"page_size"`
	Summary    string                  `json:"summary"`
}

type facetsResponse struct {
	Areas    []string `json:"areas"`
	Services []string `json:"services"`
}

// detailResponse adds the schedule status class and the retained raw record
// for the optional "more details" rendering.
type detailResponse struct {
	models.BusinessRecord
	StatusClass string            `json:"status_class,omitempty"`
	Details     *models.RawRecord `json:"details,omitempty"`
}

// DirectoryHandler serves the business directory API.
type DirectoryHandler struct {
	directory   *services.DirectoryService
	refresher   *services.CatalogRefresherService
	adminSecret string
}

// NewDirectoryHandler constructs a DirectoryHandler. An empty adminSecret
// disables the admin endpoints.
func NewDirectoryHandler(
	directory *services.DirectoryService,
	refresher *services.CatalogRefresherService,
	adminSecret string,
) *DirectoryHandler {
	return &DirectoryHandler{
		directory:   directory,
		refresher:   refresher,
		adminSecret: adminSecret,
	}
}

// ListBusinesses handles GET /v1/businesses. Every query parameter is
// optional; invalid values are silently coerced, never rejected.
func (h *DirectoryHandler) ListBusinesses(w http.ResponseWriter, r *http.Request) {
	state := h.parseQueryState(r.URL.Query())
	result := h.directory.Query(&state)

	writeJSON(w, http.StatusOK, listResponse{
		Items:      result.Page,
		Total:      result.Total,
		TotalPages: result.TotalPages,
		Page:       state.Page,
		PageSize:   state.PageSize,
		Summary:    h.directory.Summary(result.Total),
	})
}

// GetFacets handles GET /v1/businesses/facets.
func (h *DirectoryHandler) GetFacets(w http.ResponseWriter, r *http.Request) {
	areas, svcs := h.directory.Facets()
	writeJSON(w, http.StatusOK, facetsResponse{Areas: areas, Services: svcs})
}

// GetBusiness handles GET /v1/businesses/{id}.
func (h *DirectoryHandler) GetBusiness(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	record, ok := h.directory.Get(id)
	if !ok {
		http.Error(w, "Business not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, detailResponse{
		BusinessRecord: *record,
		StatusClass:    directory.StatusClass(record.HoursToday),
		Details:        record.Raw,
	})
}

// GetSchema handles GET /v1/businesses/schema.jsonld.
func (h *DirectoryHandler) GetSchema(w http.ResponseWriter, r *http.Request) {
	schemas := schema.LocalBusinessSchemas(h.directory.Catalog())
	w.Header().Set("Content-Type", "application/ld+json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(schemas); err != nil {
		log.Println("Error encoding schema response:", err)
	}
}

// GetChart handles GET /v1/businesses/chart with an HTML chart of the
// catalog's ratings and review counts.
func (h *DirectoryHandler) GetChart(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := util.PlotCatalog(h.directory.Catalog(), w); err != nil {
		log.Println("Error rendering catalog chart:", err)
	}
}

// RefreshCatalog handles POST /v1/admin/refresh, guarded by a bearer token.
func (h *DirectoryHandler) RefreshCatalog(w http.ResponseWriter, r *http.Request) {
	if !h.authorizeAdmin(r) {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	if err := h.refresher.RefreshCatalog(); err != nil {
		log.Println("Error refreshing catalog:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"total": len(h.directory.Catalog())})
}

// Ping handles GET /ping.
func (h *DirectoryHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "pong"})
}

// parseQueryState builds a QueryState from request parameters, starting from
// the mount defaults and applying the same seeding priority the widget uses.
func (h *DirectoryHandler) parseQueryState(vals url.Values) models.QueryState {
	state := models.NewQueryState()
	state.Seed(vals, "", "")

	state.SearchText = vals.Get(Q_QUERY_ARG)
	if area := strings.TrimSpace(vals.Get(AREA_QUERY_ARG)); area != "" {
		state.AreaFilter = area
	}
	if chip := strings.TrimSpace(vals.Get(CHIP_QUERY_ARG)); chip != "" {
		state.ActiveChip = chip
	}
	state.Page = parseArgInt(vals, PAGE_QUERY_ARG, 1)
	state.PageSize = models.NormalizePageSize(
		parseArgInt(vals, PAGE_SIZE_QUERY_ARG, models.DEFAULT_PAGE_SIZE))
	return state
}

// authorizeAdmin validates the Authorization bearer token as an HS256 JWT
// signed with the configured admin secret.
func (h *DirectoryHandler) authorizeAdmin(r *http.Request) bool {
	if h.adminSecret == "" {
		return false
	}
	header := r.Header.Get("Authorization")
	tokenString, found := strings.CutPrefix(header, "Bearer ")
	if !found || tokenString == "" {
		return false
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(h.adminSecret), nil
	})
	return err == nil && token.Valid
}

func parseArgInt(vals url.Values, name string, fallback int) int {
	s := vals.Get(name)
	if s == "" {
		return fallback
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Println("Error encoding response:", err)
	}
}
