package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/diwise/heritage-broker/internal/pkg/application/federation"
	"github.com/diwise/heritage-broker/internal/pkg/presentation/api/auth"
	herr "github.com/diwise/heritage-broker/pkg/heritage/errors"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("heritage-broker/api")

const (
	TraceAttributeEntityID string = "entity-id"

	ContentTypeJSON string = "application/json"
)

func RegisterHandlers(ctx context.Context, r chi.Router, policies io.Reader, app federation.Federation) error {

	authorizer, err := auth.NewAuthorizer(ctx, policies)
	if err != nil {
		return fmt.Errorf("failed to create api authorizer: %w", err)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(Logger(logging.GetFromContext(ctx)))

		r.NotFound(func(w http.ResponseWriter, r *http.Request) {
			herr.ReportNotFoundError(w, "no such resource: "+r.URL.Path, traceIDFromRequest(r))
		})

		r.Get("/entities/{id}", NewRetrieveEntityHandler(app, authorizer))
		r.Get("/people", NewQueryPeopleHandler(app, authorizer))

		r.Route("/objects", func(r chi.Router) {
			r.Get("/", NewQueryObjectsHandler(app, authorizer))
			r.Get("/{id}/authors", NewRetrieveAuthorsOfObjectHandler(app, authorizer))
		})

		r.Get("/activities", NewQueryActivitiesHandler(app, authorizer))
	})

	return nil
}

func Logger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			_, ctx, _ = o11y.AddTraceIDToLoggerAndStoreInContext(
				trace.SpanFromContext(ctx),
				logger,
				ctx)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// mapFederationError reports source failures as a bad gateway and
// everything else as an internal error
func mapFederationError(w http.ResponseWriter, err error, traceID string) {
	switch {
	case errors.Is(err, herr.ErrRequest), errors.Is(err, herr.ErrBadResponse), errors.Is(err, herr.ErrMissingColumn):
		herr.ReportSourceUnavailable(w, err.Error(), traceID)
	case errors.Is(err, herr.ErrBadRequest):
		herr.ReportNewBadRequestData(w, err.Error(), traceID)
	default:
		herr.ReportNewInternalError(w, err.Error(), traceID)
	}
}

func traceIDFromRequest(r *http.Request) string {
	sc := trace.SpanFromContext(r.Context()).SpanContext()
	if !sc.HasTraceID() {
		return ""
	}
	return sc.TraceID().String()
}

func writeJSON(w http.ResponseWriter, log *slog.Logger, traceID string, body any) {
	responseBody, err := json.Marshal(body)
	if err != nil {
		log.Error("failed to marshal response body", "err", err.Error())
		herr.ReportNewInternalError(w, "failed to encode response", traceID)
		return
	}

	w.Header().Add("Content-Type", ContentTypeJSON)
	w.WriteHeader(http.StatusOK)
	w.Write(responseBody)
}

// singleFilter returns the one query parameter among names that is present in
// the request. Requesting more than one of them is a bad request.
func singleFilter(r *http.Request, names ...string) (name, value string, err error) {
	query := r.URL.Query()

	for _, n := range names {
		if !query.Has(n) {
			continue
		}

		if name != "" {
			return "", "", herr.NewBadRequestError(fmt.Sprintf("query parameters %s and %s can not be combined", name, n))
		}

		name, value = n, query.Get(n)
		if value == "" {
			return "", "", herr.NewBadRequestError(fmt.Sprintf("query parameter %s must not be empty", n))
		}
	}

	return name, value, nil
}
