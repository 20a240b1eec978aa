package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// DirectoryAPI is the handler surface the router wires up. Declared as an
// interface so router tests can swap in a mock.
type DirectoryAPI interface {
	ListBusinesses(w http.ResponseWriter, r *http.Request)
	GetFacets(w http.ResponseWriter, r *http.Request)
	GetBusiness(w http.ResponseWriter, r *http.Request)
	GetSchema(w http.ResponseWriter, r *http.Request)
	GetChart(w http.ResponseWriter, r *http.Request)
	RefreshCatalog(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	directoryHandler DirectoryAPI
	router           *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(
	directoryHandler DirectoryAPI,
	router *mux.Router) *Router {
	return &Router{
		directoryHandler: directoryHandler,
		router:           router,
	}
}

func (r *Router) RegisterRoutes() {
	// expects ?q=&area=&service=&chip=&sort=&page=&pageSize= (all optional)
	r.router.HandleFunc("/v1/businesses", r.directoryHandler.ListBusinesses).Methods("GET")
	r.router.HandleFunc("/v1/businesses/facets", r.directoryHandler.GetFacets).Methods("GET")
	r.router.HandleFunc("/v1/businesses/schema.jsonld", r.directoryHandler.GetSchema).Methods("GET")
	r.router.HandleFunc("/v1/businesses/chart", r.directoryHandler.GetChart).Methods("GET")
	r.router.HandleFunc("/v1/businesses/{id}", r.directoryHandler.GetBusiness).Methods("GET")

	r.router.HandleFunc("/v1/admin/refresh", r.directoryHandler.RefreshCatalog).Methods("POST")

	r.router.HandleFunc("/ping", r.directoryHandler.Ping).Methods("GET")
}
