package http

import (
	"net/http"

	"github.com/MKhiriev/go-gatekeeper/internal/logger"
	"github.com/MKhiriev/go-gatekeeper/internal/utils"
)

type routeStatus struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Paths    []string `json:"paths"`
	Methods  []string `json:"methods,omitempty"`
	Upstream string   `json:"upstream,omitempty"`
	Plugins  []string `json:"plugins"`
}

type statusResponse struct {
	Product string        `json:"product"`
	Version string        `json:"version"`
	Routes  []routeStatus `json:"routes"`
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}

func (h *Handler) getStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	info := h.services.AppInfoService

	status := statusResponse{
		Product: info.GetProductName(ctx),
		Version: info.GetAppVersion(ctx),
		Routes:  make([]routeStatus, 0, len(h.runners)),
	}
	for _, runner := range h.runners {
		route := runner.Route()
		status.Routes = append(status.Routes, routeStatus{
			ID:       route.ID,
			Name:     route.Name,
			Paths:    route.Paths,
			Methods:  route.Methods,
			Upstream: route.Upstream,
			Plugins:  runner.Plugins(),
		})
	}

	if _, err := utils.WriteJSON(w, status, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getStatus").Msg("failed to write status")
	}
}
