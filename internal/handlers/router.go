package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/loongsen/qcrelay/internal/buildinfo"
	"github.com/loongsen/qcrelay/internal/middleware"
	"github.com/loongsen/qcrelay/internal/models"
	"go.uber.org/zap"
)

// LivenessMessage is returned on the root path for platform health checks
const LivenessMessage = "Inspection API is running"

// JobOrderFinder resolves a lot number to its job order
type JobOrderFinder interface {
	Find(ctx context.Context, lotNo string) (*models.JobOrder, error)
}

// InspectionStore persists inspection submissions
type InspectionStore interface {
	Save(ctx context.Context, payload models.Inspection) (string, error)
	Get(ctx context.Context, id string) (models.Inspection, error)
}

// DBChecker checks relational connectivity
type DBChecker interface {
	Check(ctx context.Context) (int, error)
}

// Router wraps the mux router and the services behind it
type Router struct {
	*mux.Router
	jobOrders   JobOrderFinder
	inspections InspectionStore
	db          DBChecker
	log         *zap.Logger
}

// NewRouter creates a new HTTP router with all routes
func NewRouter(jobOrders JobOrderFinder, inspections InspectionStore, db DBChecker, log *zap.Logger) *Router {
	r := &Router{
		Router:      mux.NewRouter(),
		jobOrders:   jobOrders,
		inspections: inspections,
		db:          db,
		log:         log,
	}

	r.HandleFunc("/", r.liveness).Methods("GET")
	r.HandleFunc("/health", r.healthCheck).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/joborder/{id}", r.getJobOrder).Methods("GET")
	api.HandleFunc("/inspections", r.createInspection).Methods("POST")
	api.HandleFunc("/inspections/{id}", r.getInspection).Methods("GET")
	api.HandleFunc("/health/db", r.dbHealth).Methods("GET")

	return r
}

// Handler returns the router wrapped in the shared middleware chain
func (r *Router) Handler() http.Handler {
	var h http.Handler = r.Router
	h = middleware.CORS()(h)
	h = middleware.Recovery(r.log)(h)
	h = middleware.Logger(r.log)(h)
	return h
}

// liveness answers platform health checks without touching any backend
func (r *Router) liveness(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(LivenessMessage))
}

// healthCheck returns the process status and build metadata
func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	info := buildinfo.Get()
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":     "ok",
		"service":    "qcrelay",
		"build_time": info.BuildTime,
		"commit":     info.CommitHash,
		"started_at": info.StartedAt,
	})
}

// requestLog returns the logger tagged with the current request id
func (r *Router) requestLog(req *http.Request) *zap.Logger {
	if id := middleware.RequestID(req.Context()); id != "" {
		return r.log.With(zap.String("request_id", id))
	}
	return r.log
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{
		"error": message,
	})
}
