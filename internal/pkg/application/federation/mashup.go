package federation

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/diwise/heritage-broker/pkg/heritage"
	herr "github.com/diwise/heritage-broker/pkg/heritage/errors"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("heritage-broker/federation")

const (
	TraceAttributeObjectID string = "object-id"
	TraceAttributeAuthorID string = "author-id"
)

type mashupApp struct {
	mu         sync.RWMutex
	metadata   []MetadataSource
	process    []ProcessSource
	strategies MergeStrategies
}

func New(cfg Config, metadata []MetadataSource, process []ProcessSource) (Federation, error) {
	strategies := cfg.MergeStrategies.withDefaults()
	if err := strategies.validate(); err != nil {
		return nil, err
	}

	return &mashupApp{
		metadata:   slices.Clone(metadata),
		process:    slices.Clone(process),
		strategies: strategies,
	}, nil
}

func (m *mashupApp) AddMetadataSource(src MetadataSource) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.metadata = append(m.metadata, src)
}

func (m *mashupApp) AddProcessSource(src ProcessSource) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.process = append(m.process, src)
}

func (m *mashupApp) CleanMetadataSources() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.metadata = nil
}

func (m *mashupApp) CleanProcessSources() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.process = nil
}

func (m *mashupApp) metadataSources() []MetadataSource {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return slices.Clone(m.metadata)
}

func (m *mashupApp) processSources() []ProcessSource {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return slices.Clone(m.process)
}

func (m *mashupApp) GetEntityByID(ctx context.Context, id string) (people []heritage.Person, err error) {
	ctx, span := tracer.Start(ctx, "get-entity-by-id",
		trace.WithAttributes(attribute.String(TraceAttributeObjectID, id)),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	rows, err := collect(ctx, MergeUnion, m.metadataSources(),
		func(src MetadataSource) ([]Row, error) { return src.GetByID(ctx, id) },
		columnKey(ColumnIdentifier),
	)
	if err != nil {
		return nil, err
	}

	return peopleFromRows(rows, ColumnIdentifier)
}

func (m *mashupApp) GetAllPeople(ctx context.Context) (people []heritage.Person, err error) {
	ctx, span := tracer.Start(ctx, "get-all-people")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	rows, err := collect(ctx, m.strategies.People, m.metadataSources(),
		func(src MetadataSource) ([]Row, error) { return src.GetAllPeople(ctx) },
		columnKey(ColumnID),
	)
	if err != nil {
		return nil, err
	}

	return peopleFromRows(rows, ColumnID)
}

func (m *mashupApp) GetAuthorsOfCulturalHeritageObject(ctx context.Context, objectID string) (authors []heritage.Person, err error) {
	ctx, span := tracer.Start(ctx, "get-authors-of-object",
		trace.WithAttributes(attribute.String(TraceAttributeObjectID, objectID)),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	rows, err := collect(ctx, m.strategies.Authors, m.metadataSources(),
		func(src MetadataSource) ([]Row, error) { return src.GetAuthorsOfCulturalHeritageObject(ctx, objectID) },
		columnKey(ColumnID),
	)
	if err != nil {
		return nil, err
	}

	return peopleFromRows(rows, ColumnID)
}

func (m *mashupApp) GetAllCulturalHeritageObjects(ctx context.Context) (objects []heritage.CulturalHeritageObject, err error) {
	ctx, span := tracer.Start(ctx, "get-all-objects")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	rows, err := collect(ctx, m.strategies.Objects, m.metadataSources(),
		func(src MetadataSource) ([]Row, error) { return src.GetAllCulturalHeritageObjects(ctx) },
		objectKey,
	)
	if err != nil {
		return nil, err
	}

	return objectsFromRows(ctx, rows)
}

func (m *mashupApp) GetCulturalHeritageObjectsAuthoredBy(ctx context.Context, authorID string) (objects []heritage.CulturalHeritageObject, err error) {
	ctx, span := tracer.Start(ctx, "get-objects-authored-by",
		trace.WithAttributes(attribute.String(TraceAttributeAuthorID, authorID)),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	rows, err := collect(ctx, m.strategies.Objects, m.metadataSources(),
		func(src MetadataSource) ([]Row, error) { return src.GetCulturalHeritageObjectsAuthoredBy(ctx, authorID) },
		objectKey,
	)
	if err != nil {
		return nil, err
	}

	return objectsFromRows(ctx, rows)
}

func (m *mashupApp) GetAllActivities(ctx context.Context) ([]heritage.Activity, error) {
	return m.queryActivities(ctx, "get-all-activities", func(src ProcessSource) ([]Row, error) {
		return src.GetAllActivities(ctx)
	})
}

func (m *mashupApp) GetActivitiesByResponsibleInstitution(ctx context.Context, institution string) ([]heritage.Activity, error) {
	return m.queryActivities(ctx, "get-activities-by-institution", func(src ProcessSource) ([]Row, error) {
		return src.GetActivitiesByResponsibleInstitution(ctx, institution)
	})
}

func (m *mashupApp) GetActivitiesByResponsiblePerson(ctx context.Context, person string) ([]heritage.Activity, error) {
	return m.queryActivities(ctx, "get-activities-by-person", func(src ProcessSource) ([]Row, error) {
		return src.GetActivitiesByResponsiblePerson(ctx, person)
	})
}

func (m *mashupApp) GetActivitiesUsingTool(ctx context.Context, tool string) ([]heritage.Activity, error) {
	return m.queryActivities(ctx, "get-activities-using-tool", func(src ProcessSource) ([]Row, error) {
		return src.GetActivitiesUsingTool(ctx, tool)
	})
}

func (m *mashupApp) GetActivitiesStartedAfter(ctx context.Context, date string) ([]heritage.Activity, error) {
	return m.queryActivities(ctx, "get-activities-started-after", func(src ProcessSource) ([]Row, error) {
		return src.GetActivitiesStartedAfter(ctx, date)
	})
}

func (m *mashupApp) GetActivitiesEndedBefore(ctx context.Context, date string) ([]heritage.Activity, error) {
	return m.queryActivities(ctx, "get-activities-ended-before", func(src ProcessSource) ([]Row, error) {
		return src.GetActivitiesEndedBefore(ctx, date)
	})
}

func (m *mashupApp) GetAcquisitionsByTechnique(ctx context.Context, technique string) ([]heritage.Activity, error) {
	return m.queryActivities(ctx, "get-acquisitions-by-technique", func(src ProcessSource) ([]Row, error) {
		return src.GetAcquisitionsByTechnique(ctx, technique)
	})
}

func (m *mashupApp) queryActivities(ctx context.Context, operation string, query func(ProcessSource) ([]Row, error)) (activities []heritage.Activity, err error) {
	ctx, span := tracer.Start(ctx, operation)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	rows, err := collect(ctx, m.strategies.Activities, m.processSources(), query, activityKey)
	if err != nil {
		return nil, err
	}

	return activitiesFromRows(ctx, rows)
}

func peopleFromRows(rows []sourcedRow, idColumn string) ([]heritage.Person, error) {
	people := make([]heritage.Person, 0, len(rows))

	for _, sr := range rows {
		rr := read(sr)
		person := heritage.NewPerson(rr.required(idColumn), rr.required(ColumnName))
		if rr.err != nil {
			return nil, rr.err
		}

		people = append(people, person)
	}

	return people, nil
}

func objectsFromRows(ctx context.Context, rows []sourcedRow) ([]heritage.CulturalHeritageObject, error) {
	objects := make([]heritage.CulturalHeritageObject, 0, len(rows))

	for _, sr := range rows {
		obj, err := objectFromRow(ctx, sr)
		if err != nil {
			return nil, err
		}

		if obj != nil {
			objects = append(objects, obj)
		}
	}

	return objects, nil
}

// objectFromRow returns a nil object without an error when the row carries an
// unrecognized type tag. The row is reported and should be skipped by the caller.
func objectFromRow(ctx context.Context, sr sourcedRow) (heritage.CulturalHeritageObject, error) {
	rr := read(sr)

	tag := rr.required(ColumnTypeName)
	fields := heritage.ObjectFields{
		ID:    rr.required(ColumnID),
		Title: rr.required(ColumnTitle),
		Date:  rr.required(ColumnDate),
		Owner: rr.required(ColumnOwner),
		Place: rr.required(ColumnPlace),
	}

	if rr.err != nil {
		return nil, rr.err
	}

	if fields.ID == "" {
		logging.GetFromContext(ctx).Warn("skipping object without identifier",
			"source", sr.source, "type", tag, "title", fields.Title)
		return nil, nil
	}

	authorID, authorName := rr.optional(ColumnAuthorID), rr.optional(ColumnAuthorName)
	if authorID != "" && authorName != "" {
		fields.Authors = []heritage.Person{heritage.NewPerson(authorID, authorName)}
	}

	obj, err := heritage.NewObject(tag, fields)
	if err != nil {
		if errors.Is(err, herr.ErrUnknownType) {
			logging.GetFromContext(ctx).Warn("skipping object with unknown type",
				"source", sr.source, "object_id", fields.ID, "type", tag)
			return nil, nil
		}
		return nil, err
	}

	return obj, nil
}

func activitiesFromRows(ctx context.Context, rows []sourcedRow) ([]heritage.Activity, error) {
	activities := make([]heritage.Activity, 0, len(rows))

	for _, sr := range rows {
		a, err := activityFromRow(ctx, sr)
		if err != nil {
			return nil, err
		}

		if a != nil {
			activities = append(activities, a)
		}
	}

	return activities, nil
}

// activityFromRow behaves like objectFromRow. The activity refers to its object
// by id only, since process sources carry no descriptive metadata.
func activityFromRow(ctx context.Context, sr sourcedRow) (heritage.Activity, error) {
	rr := read(sr)

	tag := rr.required(ColumnType)
	fields := heritage.ActivityFields{
		RefersTo:  heritage.NewObjectRef(rr.required(ColumnObjectID)),
		Institute: rr.required(ColumnResponsibleInstitute),
		Person:    rr.required(ColumnResponsiblePerson),
		Tools:     splitTools(rr.required(ColumnTool)),
		Start:     rr.required(ColumnStartDate),
		End:       rr.required(ColumnEndDate),
	}

	if rr.err != nil {
		return nil, rr.err
	}

	if heritage.ActivityType(tag) == heritage.AcquisitionType {
		fields.Technique = rr.optional(ColumnTechnique)
	}

	a, err := heritage.NewActivity(tag, fields)
	if err != nil {
		if errors.Is(err, herr.ErrUnknownType) {
			logging.GetFromContext(ctx).Warn("skipping activity with unknown type",
				"source", sr.source, "object_id", fields.RefersTo.ID(), "type", tag)
			return nil, nil
		}
		return nil, err
	}

	return a, nil
}
