package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/diwise/heritage-broker/internal/pkg/application/federation"
	"github.com/diwise/heritage-broker/internal/pkg/presentation/api/auth"
	"github.com/diwise/heritage-broker/pkg/heritage"
	herr "github.com/diwise/heritage-broker/pkg/heritage/errors"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const notAuthorized string = "not authorized"

// NewRetrieveEntityHandler handles GET requests for the people known to the metadata sources
// by the given identifier
func NewRetrieveEntityHandler(app federation.EntityRetriever, authorizer auth.Authorizer) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		entityID, _ := url.QueryUnescape(chi.URLParam(r, "id"))

		ctx, span := tracer.Start(r.Context(), "retrieve-entity",
			trace.WithAttributes(attribute.String(TraceAttributeEntityID, entityID)),
		)
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		traceID, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

		err = authorizer.CheckAccess(ctx, r)
		if err != nil {
			log.Warn("access not granted", "err", err.Error())
			herr.ReportUnauthorizedRequest(w, notAuthorized, traceID)
			return
		}

		people, err := app.GetEntityByID(ctx, entityID)
		if err != nil {
			log.Error("failed to retrieve entity", "entity_id", entityID, "err", err.Error())
			mapFederationError(w, err, traceID)
			return
		}

		writeJSON(w, log, traceID, toPeople(people))
	})
}

// NewQueryPeopleHandler handles GET requests for people. The result can be narrowed
// down to the authors of objects acquired after and exported before a pair of dates.
func NewQueryPeopleHandler(app federation.PeopleRetriever, authorizer auth.Authorizer) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "query-people")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		traceID, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

		err = authorizer.CheckAccess(ctx, r)
		if err != nil {
			log.Warn("access not granted", "err", err.Error())
			herr.ReportUnauthorizedRequest(w, notAuthorized, traceID)
			return
		}

		query := r.URL.Query()
		acquiredAfter, exportedBefore := query.Get("acquiredAfter"), query.Get("exportedBefore")

		var people []heritage.Person

		switch {
		case acquiredAfter == "" && exportedBefore == "":
			people, err = app.GetAllPeople(ctx)
		case acquiredAfter != "" && exportedBefore != "":
			people, err = app.GetAuthorsOfObjectsAcquiredInTimeFrame(ctx, acquiredAfter, exportedBefore)
		default:
			err = herr.NewBadRequestError("acquiredAfter and exportedBefore must be used together")
		}

		if err != nil {
			log.Error("failed to query people", "err", err.Error())
			mapFederationError(w, err, traceID)
			return
		}

		writeJSON(w, log, traceID, toPeople(people))
	})
}

func NewRetrieveAuthorsOfObjectHandler(app federation.PeopleRetriever, authorizer auth.Authorizer) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		objectID, _ := url.QueryUnescape(chi.URLParam(r, "id"))

		ctx, span := tracer.Start(r.Context(), "retrieve-authors-of-object",
			trace.WithAttributes(attribute.String(TraceAttributeEntityID, objectID)),
		)
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		traceID, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

		err = authorizer.CheckAccess(ctx, r)
		if err != nil {
			log.Warn("access not granted", "err", err.Error())
			herr.ReportUnauthorizedRequest(w, notAuthorized, traceID)
			return
		}

		authors, err := app.GetAuthorsOfCulturalHeritageObject(ctx, objectID)
		if err != nil {
			log.Error("failed to retrieve authors", "object_id", objectID, "err", err.Error())
			mapFederationError(w, err, traceID)
			return
		}

		writeJSON(w, log, traceID, toPeople(authors))
	})
}

type objectQuery func(ctx context.Context, value string) ([]heritage.CulturalHeritageObject, error)

func NewQueryObjectsHandler(app federation.ObjectRetriever, authorizer auth.Authorizer) http.HandlerFunc {
	filters := map[string]objectQuery{
		"authoredBy":           app.GetCulturalHeritageObjectsAuthoredBy,
		"handledByPerson":      app.GetObjectsHandledByResponsiblePerson,
		"handledByInstitution": app.GetObjectsHandledByResponsibleInstitution,
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "query-objects")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		traceID, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

		err = authorizer.CheckAccess(ctx, r)
		if err != nil {
			log.Warn("access not granted", "err", err.Error())
			herr.ReportUnauthorizedRequest(w, notAuthorized, traceID)
			return
		}

		name, value, err := singleFilter(r, "authoredBy", "handledByPerson", "handledByInstitution")
		if err != nil {
			herr.ReportNewBadRequestData(w, err.Error(), traceID)
			return
		}

		var objects []heritage.CulturalHeritageObject

		if name == "" {
			objects, err = app.GetAllCulturalHeritageObjects(ctx)
		} else {
			objects, err = filters[name](ctx, value)
		}

		if err != nil {
			log.Error("failed to query objects", "filter", name, "err", err.Error())
			mapFederationError(w, err, traceID)
			return
		}

		writeJSON(w, log, traceID, toObjects(objects))
	})
}

type activityQuery func(ctx context.Context, value string) ([]heritage.Activity, error)

func NewQueryActivitiesHandler(app federation.ActivityRetriever, authorizer auth.Authorizer) http.HandlerFunc {
	filters := map[string]activityQuery{
		"institution":         app.GetActivitiesByResponsibleInstitution,
		"person":              app.GetActivitiesByResponsiblePerson,
		"tool":                app.GetActivitiesUsingTool,
		"startedAfter":        app.GetActivitiesStartedAfter,
		"endedBefore":         app.GetActivitiesEndedBefore,
		"technique":           app.GetAcquisitionsByTechnique,
		"onObjectsAuthoredBy": app.GetActivitiesOnObjectsAuthoredBy,
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "query-activities")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		traceID, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

		err = authorizer.CheckAccess(ctx, r)
		if err != nil {
			log.Warn("access not granted", "err", err.Error())
			herr.ReportUnauthorizedRequest(w, notAuthorized, traceID)
			return
		}

		name, value, err := singleFilter(r,
			"institution", "person", "tool", "startedAfter", "endedBefore", "technique", "onObjectsAuthoredBy",
		)
		if err != nil {
			herr.ReportNewBadRequestData(w, err.Error(), traceID)
			return
		}

		var activities []heritage.Activity

		if name == "" {
			activities, err = app.GetAllActivities(ctx)
		} else {
			activities, err = filters[name](ctx, value)
		}

		if err != nil {
			log.Error("failed to query activities", "filter", name, "err", err.Error())
			mapFederationError(w, err, traceID)
			return
		}

		writeJSON(w, log, traceID, toActivities(activities))
	})
}
