package store

import (
	"context"

	"github.com/MKhiriev/go-gatekeeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// RouteRepository loads the routes served by the gateway.
type RouteRepository interface {
	// ListRoutes returns every configured route with its plugins in
	// configuration order.
	ListRoutes(ctx context.Context) ([]models.Route, error)
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
