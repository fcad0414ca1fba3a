package handlers

import (
	"net/http"

	"go.uber.org/zap"
)

// dbHealth runs a round trip against the plant database.
// Unlike the data routes it reports the driver error text, operators rely on it for diagnosis.
func (r *Router) dbHealth(w http.ResponseWriter, req *http.Request) {
	result, err := r.db.Check(req.Context())
	if err != nil {
		r.requestLog(req).Error("Database health check failed", zap.Error(err))
		respondJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"test":    result,
	})
}
