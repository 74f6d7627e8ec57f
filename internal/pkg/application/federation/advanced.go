package federation

import (
	"context"

	"github.com/diwise/heritage-broker/pkg/heritage"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

func (m *mashupApp) GetActivitiesOnObjectsAuthoredBy(ctx context.Context, authorID string) (activities []heritage.Activity, err error) {
	ctx, span := tracer.Start(ctx, "get-activities-on-objects-authored-by",
		trace.WithAttributes(attribute.String(TraceAttributeAuthorID, authorID)),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	objectRows, err := collect(ctx, m.strategies.Objects, m.metadataSources(),
		func(src MetadataSource) ([]Row, error) { return src.GetCulturalHeritageObjectsAuthoredBy(ctx, authorID) },
		objectKey,
	)
	if err != nil {
		return nil, err
	}

	authored := make(map[string]struct{}, len(objectRows))
	for _, sr := range objectRows {
		id, err := objectKey(sr)
		if err != nil {
			return nil, err
		}
		authored[id] = struct{}{}
	}

	if len(authored) == 0 {
		return []heritage.Activity{}, nil
	}

	activityRows, err := collect(ctx, m.strategies.Activities, m.processSources(),
		func(src ProcessSource) ([]Row, error) { return src.GetAllActivities(ctx) },
		activityKey,
	)
	if err != nil {
		return nil, err
	}

	matching := make([]sourcedRow, 0, len(activityRows))
	for _, sr := range activityRows {
		rr := read(sr)
		objectID := normalizeID(rr.required(ColumnObjectID))
		if rr.err != nil {
			return nil, rr.err
		}

		if _, ok := authored[objectID]; ok {
			matching = append(matching, sr)
		}
	}

	return activitiesFromRows(ctx, matching)
}

func (m *mashupApp) GetObjectsHandledByResponsiblePerson(ctx context.Context, person string) ([]heritage.CulturalHeritageObject, error) {
	return m.objectsHandledBy(ctx, "get-objects-handled-by-person", func(src ProcessSource) ([]Row, error) {
		return src.GetActivitiesByResponsiblePerson(ctx, person)
	})
}

func (m *mashupApp) GetObjectsHandledByResponsibleInstitution(ctx context.Context, institution string) ([]heritage.CulturalHeritageObject, error) {
	return m.objectsHandledBy(ctx, "get-objects-handled-by-institution", func(src ProcessSource) ([]Row, error) {
		return src.GetActivitiesByResponsibleInstitution(ctx, institution)
	})
}

// objectsHandledBy joins the activities returned by query with the object enumeration
// of the metadata sources. Each object is returned once, in the order of the first
// activity that refers to it. Activities that refer to an object unknown to the
// metadata sources are reported and skipped.
func (m *mashupApp) objectsHandledBy(ctx context.Context, operation string, query func(ProcessSource) ([]Row, error)) (objects []heritage.CulturalHeritageObject, err error) {
	ctx, span := tracer.Start(ctx, operation)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	activityRows, err := collect(ctx, m.strategies.Activities, m.processSources(), query, activityKey)
	if err != nil {
		return nil, err
	}

	if len(activityRows) == 0 {
		return []heritage.CulturalHeritageObject{}, nil
	}

	objectRows, err := collect(ctx, m.strategies.Objects, m.metadataSources(),
		func(src MetadataSource) ([]Row, error) { return src.GetAllCulturalHeritageObjects(ctx) },
		objectKey,
	)
	if err != nil {
		return nil, err
	}

	index := make(map[string]sourcedRow, len(objectRows))
	for _, sr := range objectRows {
		id, err := objectKey(sr)
		if err != nil {
			return nil, err
		}
		if _, exists := index[id]; !exists {
			index[id] = sr
		}
	}

	log := logging.GetFromContext(ctx)

	objects = make([]heritage.CulturalHeritageObject, 0, len(activityRows))
	seen := make(map[string]struct{}, len(activityRows))

	for _, sr := range activityRows {
		rr := read(sr)
		objectID := normalizeID(rr.required(ColumnObjectID))
		if rr.err != nil {
			return nil, rr.err
		}

		if _, ok := seen[objectID]; ok {
			continue
		}
		seen[objectID] = struct{}{}

		objectRow, ok := index[objectID]
		if !ok {
			log.Warn("activity refers to an object unknown to the metadata sources",
				"source", sr.source, "object_id", objectID)
			continue
		}

		obj, err := objectFromRow(ctx, objectRow)
		if err != nil {
			return nil, err
		}

		if obj != nil {
			objects = append(objects, obj)
		}
	}

	return objects, nil
}

// GetAuthorsOfObjectsAcquiredInTimeFrame returns the authors of every object that has
// an acquisition starting at or after start and an export ending at or before end.
// Authors are accumulated per object without deduplication.
func (m *mashupApp) GetAuthorsOfObjectsAcquiredInTimeFrame(ctx context.Context, start, end string) (authors []heritage.Person, err error) {
	ctx, span := tracer.Start(ctx, "get-authors-of-objects-acquired-in-time-frame",
		trace.WithAttributes(
			attribute.String("start", start),
			attribute.String("end", end),
		),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	processSources := m.processSources()

	started, err := collect(ctx, m.strategies.Activities, processSources,
		func(src ProcessSource) ([]Row, error) { return src.GetActivitiesStartedAfter(ctx, start) },
		activityKey,
	)
	if err != nil {
		return nil, err
	}

	ended, err := collect(ctx, m.strategies.Activities, processSources,
		func(src ProcessSource) ([]Row, error) { return src.GetActivitiesEndedBefore(ctx, end) },
		activityKey,
	)
	if err != nil {
		return nil, err
	}

	acquired, err := objectIDsOfType(started, heritage.AcquisitionType)
	if err != nil {
		return nil, err
	}

	exported, err := objectIDsOfType(ended, heritage.ExportingType)
	if err != nil {
		return nil, err
	}

	exportedIDs := make(map[string]struct{}, len(exported))
	for _, id := range exported {
		exportedIDs[id] = struct{}{}
	}

	authors = []heritage.Person{}

	for _, id := range acquired {
		if _, ok := exportedIDs[id]; !ok {
			continue
		}

		objectAuthors, err := m.GetAuthorsOfCulturalHeritageObject(ctx, id)
		if err != nil {
			return nil, err
		}

		authors = append(authors, objectAuthors...)
	}

	return authors, nil
}

// objectIDsOfType returns the distinct normalized object ids referred to by
// activities of the given type, in order of first appearance
func objectIDsOfType(rows []sourcedRow, activityType heritage.ActivityType) ([]string, error) {
	ids := []string{}
	seen := map[string]struct{}{}

	for _, sr := range rows {
		rr := read(sr)
		tag := rr.required(ColumnType)
		raw := rr.required(ColumnObjectID)
		if rr.err != nil {
			return nil, rr.err
		}

		if heritage.ActivityType(tag) != activityType {
			continue
		}

		normalized := normalizeID(raw)
		if _, ok := seen[normalized]; ok {
			continue
		}

		seen[normalized] = struct{}{}
		ids = append(ids, normalized)
	}

	return ids, nil
}
