package federation

import (
	"context"

	"github.com/diwise/heritage-broker/pkg/heritage"
)

//go:generate moq -rm -out federation_mock.go . Federation

type EntityRetriever interface {
	GetEntityByID(ctx context.Context, id string) ([]heritage.Person, error)
}

type PeopleRetriever interface {
	GetAllPeople(ctx context.Context) ([]heritage.Person, error)
	GetAuthorsOfCulturalHeritageObject(ctx context.Context, objectID string) ([]heritage.Person, error)
	GetAuthorsOfObjectsAcquiredInTimeFrame(ctx context.Context, start, end string) ([]heritage.Person, error)
}

type ObjectRetriever interface {
	GetAllCulturalHeritageObjects(ctx context.Context) ([]heritage.CulturalHeritageObject, error)
	GetCulturalHeritageObjectsAuthoredBy(ctx context.Context, authorID string) ([]heritage.CulturalHeritageObject, error)
	GetObjectsHandledByResponsiblePerson(ctx context.Context, person string) ([]heritage.CulturalHeritageObject, error)
	GetObjectsHandledByResponsibleInstitution(ctx context.Context, institution string) ([]heritage.CulturalHeritageObject, error)
}

type ActivityRetriever interface {
	GetAllActivities(ctx context.Context) ([]heritage.Activity, error)
	GetActivitiesByResponsibleInstitution(ctx context.Context, institution string) ([]heritage.Activity, error)
	GetActivitiesByResponsiblePerson(ctx context.Context, person string) ([]heritage.Activity, error)
	GetActivitiesUsingTool(ctx context.Context, tool string) ([]heritage.Activity, error)
	GetActivitiesStartedAfter(ctx context.Context, date string) ([]heritage.Activity, error)
	GetActivitiesEndedBefore(ctx context.Context, date string) ([]heritage.Activity, error)
	GetAcquisitionsByTechnique(ctx context.Context, technique string) ([]heritage.Activity, error)
	GetActivitiesOnObjectsAuthoredBy(ctx context.Context, authorID string) ([]heritage.Activity, error)
}

// SourceManager changes the set of sources consulted by subsequent queries
type SourceManager interface {
	AddMetadataSource(src MetadataSource)
	AddProcessSource(src ProcessSource)
	CleanMetadataSources()
	CleanProcessSources()
}

type Federation interface {
	SourceManager

	EntityRetriever
	PeopleRetriever
	ObjectRetriever
	ActivityRetriever
}
