package federation

import (
	"context"
)

// Row is a single record returned by a source, keyed by column name. Every column
// selected by the source query is present, with a nil value when it was unbound.
type Row map[string]any

// Column names consumed from metadata sources
const (
	ColumnIdentifier string = "identifier"
	ColumnID         string = "id"
	ColumnName       string = "name"
	ColumnTitle      string = "title"
	ColumnTypeName   string = "type_name"
	ColumnDate       string = "date"
	ColumnOwner      string = "owner"
	ColumnPlace      string = "place"
	ColumnAuthorID   string = "author_id"
	ColumnAuthorName string = "author_name"
)

// Column names consumed from process sources
const (
	ColumnObjectID             string = "object_id"
	ColumnResponsibleInstitute string = "responsible_institute"
	ColumnResponsiblePerson    string = "responsible_person"
	ColumnTechnique            string = "technique"
	ColumnTool                 string = "tool"
	ColumnStartDate            string = "start_date"
	ColumnEndDate              string = "end_date"
	ColumnType                 string = "type"
)

// MetadataSource answers descriptive and authorship queries about heritage objects
type MetadataSource interface {
	ID() string

	// GetByID returns identifier, name and title rows for the authors of the entity with the given id
	GetByID(ctx context.Context, id string) ([]Row, error)
	GetAllPeople(ctx context.Context) ([]Row, error)
	GetAllCulturalHeritageObjects(ctx context.Context) ([]Row, error)
	GetAuthorsOfCulturalHeritageObject(ctx context.Context, objectID string) ([]Row, error)
	GetCulturalHeritageObjectsAuthoredBy(ctx context.Context, authorID string) ([]Row, error)
}

// ProcessSource answers queries about the activities performed on heritage objects.
// Substring filters are case insensitive and date filters are inclusive.
type ProcessSource interface {
	ID() string

	GetAllActivities(ctx context.Context) ([]Row, error)
	GetActivitiesByResponsibleInstitution(ctx context.Context, institution string) ([]Row, error)
	GetActivitiesByResponsiblePerson(ctx context.Context, person string) ([]Row, error)
	GetActivitiesUsingTool(ctx context.Context, tool string) ([]Row, error)
	GetActivitiesStartedAfter(ctx context.Context, date string) ([]Row, error)
	GetActivitiesEndedBefore(ctx context.Context, date string) ([]Row, error)
	GetAcquisitionsByTechnique(ctx context.Context, technique string) ([]Row, error)
}
