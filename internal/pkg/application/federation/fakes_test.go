package federation

import (
	"context"
	"strings"
)

type fakeMetadataSource struct {
	id       string
	byID     map[string][]Row
	people   []Row
	objects  []Row
	authors  map[string][]Row
	authored map[string][]Row
	err      error
	calls    int
}

func (f *fakeMetadataSource) ID() string { return f.id }

func (f *fakeMetadataSource) GetByID(ctx context.Context, id string) ([]Row, error) {
	f.calls++
	return f.byID[id], f.err
}

func (f *fakeMetadataSource) GetAllPeople(ctx context.Context) ([]Row, error) {
	f.calls++
	return f.people, f.err
}

func (f *fakeMetadataSource) GetAllCulturalHeritageObjects(ctx context.Context) ([]Row, error) {
	f.calls++
	return f.objects, f.err
}

func (f *fakeMetadataSource) GetAuthorsOfCulturalHeritageObject(ctx context.Context, objectID string) ([]Row, error) {
	f.calls++
	return f.authors[objectID], f.err
}

func (f *fakeMetadataSource) GetCulturalHeritageObjectsAuthoredBy(ctx context.Context, authorID string) ([]Row, error) {
	f.calls++
	return f.authored[authorID], f.err
}

// fakeProcessSource filters its activities the way a real process source would
type fakeProcessSource struct {
	id         string
	activities []Row
	err        error
	calls      int
}

func (f *fakeProcessSource) ID() string { return f.id }

func (f *fakeProcessSource) filter(keep func(Row) bool) ([]Row, error) {
	f.calls++

	if f.err != nil {
		return nil, f.err
	}

	result := []Row{}
	for _, r := range f.activities {
		if keep(r) {
			result = append(result, r)
		}
	}
	return result, nil
}

func contains(column, substr string) func(Row) bool {
	return func(r Row) bool {
		return strings.Contains(strings.ToLower(asString(r[column])), strings.ToLower(substr))
	}
}

func (f *fakeProcessSource) GetAllActivities(ctx context.Context) ([]Row, error) {
	return f.filter(func(Row) bool { return true })
}

func (f *fakeProcessSource) GetActivitiesByResponsibleInstitution(ctx context.Context, institution string) ([]Row, error) {
	return f.filter(contains(ColumnResponsibleInstitute, institution))
}

func (f *fakeProcessSource) GetActivitiesByResponsiblePerson(ctx context.Context, person string) ([]Row, error) {
	return f.filter(contains(ColumnResponsiblePerson, person))
}

func (f *fakeProcessSource) GetActivitiesUsingTool(ctx context.Context, tool string) ([]Row, error) {
	return f.filter(contains(ColumnTool, tool))
}

func (f *fakeProcessSource) GetActivitiesStartedAfter(ctx context.Context, date string) ([]Row, error) {
	return f.filter(func(r Row) bool { return asString(r[ColumnStartDate]) >= date })
}

func (f *fakeProcessSource) GetActivitiesEndedBefore(ctx context.Context, date string) ([]Row, error) {
	return f.filter(func(r Row) bool { return asString(r[ColumnEndDate]) <= date })
}

func (f *fakeProcessSource) GetAcquisitionsByTechnique(ctx context.Context, technique string) ([]Row, error) {
	return f.filter(func(r Row) bool {
		return asString(r[ColumnType]) == "Acquisition" && contains(ColumnTechnique, technique)(r)
	})
}

func personRow(id, name string) Row {
	return Row{ColumnID: id, ColumnName: name}
}

func objectRow(tag, id, title, authorID, authorName string) Row {
	row := Row{
		ColumnTypeName:   tag,
		ColumnID:         id,
		ColumnTitle:      title,
		ColumnDate:       "1503",
		ColumnOwner:      "Unknown",
		ColumnPlace:      "Unknown",
		ColumnAuthorID:   nil,
		ColumnAuthorName: nil,
	}

	if authorID != "" {
		row[ColumnAuthorID] = authorID
		row[ColumnAuthorName] = authorName
	}

	return row
}

func activityRow(tag string, objectID any, institute, person, start, end string) Row {
	return Row{
		ColumnObjectID:             objectID,
		ColumnResponsibleInstitute: institute,
		ColumnResponsiblePerson:    person,
		ColumnTechnique:            nil,
		ColumnTool:                 "camera, tripod",
		ColumnStartDate:            start,
		ColumnEndDate:              end,
		ColumnType:                 tag,
	}
}
