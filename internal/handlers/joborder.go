package handlers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/loongsen/qcrelay/internal/services/joborder"
	"go.uber.org/zap"
)

// getJobOrder returns customer, quantity and size for a lot number
func (r *Router) getJobOrder(w http.ResponseWriter, req *http.Request) {
	lotNo := mux.Vars(req)["id"]
	log := r.requestLog(req).With(zap.String("job_order", lotNo))
	log.Info("Job order lookup")

	jo, err := r.jobOrders.Find(req.Context(), lotNo)
	if err != nil {
		if errors.Is(err, joborder.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Job Order not found")
			return
		}
		log.Error("Job order query failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Database query failed")
		return
	}

	respondJSON(w, http.StatusOK, jo)
}
