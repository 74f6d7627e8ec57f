package federation

import (
	"context"
	"errors"
	"testing"

	"github.com/diwise/heritage-broker/pkg/heritage"
	herr "github.com/diwise/heritage-broker/pkg/heritage/errors"
	"github.com/matryer/is"
)

func TestGetAllPeopleDropsDuplicatesAcrossSources(t *testing.T) {
	is, ctx := testSetup(t)

	first := &fakeMetadataSource{id: "first", people: []Row{personRow("A1", "Leonardo"), personRow("A2", "Galileo")}}
	second := &fakeMetadataSource{id: "second", people: []Row{personRow("A2", "Galileo Galilei"), personRow("A3", "Mercator")}}

	app := newTestApp(is, Config{}, []MetadataSource{first, second}, nil)

	people, err := app.GetAllPeople(ctx)
	is.NoErr(err)
	is.Equal(len(people), 3)              // expected duplicate A2 to be dropped
	is.Equal(people[1].Name(), "Galileo") // first seen name should be kept
	is.Equal(people[2].ID(), "A3")        // order should follow source order
}

func TestGetAllPeopleWithoutSourcesReturnsEmptySlice(t *testing.T) {
	is, ctx := testSetup(t)
	app := newTestApp(is, Config{}, nil, nil)

	people, err := app.GetAllPeople(ctx)
	is.NoErr(err)
	is.True(people != nil)
	is.Equal(len(people), 0)
}

func TestGetAllPeopleIsIdempotent(t *testing.T) {
	is, ctx := testSetup(t)

	src := &fakeMetadataSource{id: "src", people: []Row{personRow("A1", "Leonardo"), personRow("A1", "Leonardo")}}
	app := newTestApp(is, Config{}, []MetadataSource{src}, nil)

	first, err := app.GetAllPeople(ctx)
	is.NoErr(err)
	second, err := app.GetAllPeople(ctx)
	is.NoErr(err)

	is.Equal(first, second) // repeated calls should not share resolver state
	is.Equal(len(second), 1)
}

func TestGetEntityByIDReturnsDistinctPeople(t *testing.T) {
	is, ctx := testSetup(t)

	row := Row{ColumnIdentifier: "A1", ColumnName: "Leonardo", ColumnTitle: "La Gioconda"}
	first := &fakeMetadataSource{id: "first", byID: map[string][]Row{"1": {row, row}}}
	second := &fakeMetadataSource{id: "second", byID: map[string][]Row{"1": {row}}}

	app := newTestApp(is, Config{}, []MetadataSource{first, second}, nil)

	people, err := app.GetEntityByID(ctx, "1")
	is.NoErr(err)
	is.Equal(people, []heritage.Person{heritage.NewPerson("A1", "Leonardo")})

	people, err = app.GetEntityByID(ctx, "404")
	is.NoErr(err)
	is.Equal(len(people), 0) // unknown id should yield an empty result
}

func TestGetAuthorsConcatenatesByDefault(t *testing.T) {
	is, ctx := testSetup(t)

	authors := map[string][]Row{"1": {personRow("A1", "Leonardo")}}
	first := &fakeMetadataSource{id: "first", authors: authors}
	second := &fakeMetadataSource{id: "second", authors: authors}

	app := newTestApp(is, Config{}, []MetadataSource{first, second}, nil)

	people, err := app.GetAuthorsOfCulturalHeritageObject(ctx, "1")
	is.NoErr(err)
	is.Equal(len(people), 2) // authors should not be deduplicated across sources by default
}

func TestGetAuthorsCanBeConfiguredToUnion(t *testing.T) {
	is, ctx := testSetup(t)

	authors := map[string][]Row{"1": {personRow("A1", "Leonardo")}}
	first := &fakeMetadataSource{id: "first", authors: authors}
	second := &fakeMetadataSource{id: "second", authors: authors}

	cfg := Config{MergeStrategies: MergeStrategies{Authors: MergeUnion}}
	app := newTestApp(is, cfg, []MetadataSource{first, second}, nil)

	people, err := app.GetAuthorsOfCulturalHeritageObject(ctx, "1")
	is.NoErr(err)
	is.Equal(len(people), 1)
}

func TestGetAllObjectsOnlyConsultsFirstSourceByDefault(t *testing.T) {
	is, ctx := testSetup(t)

	first := &fakeMetadataSource{id: "first", objects: []Row{objectRow("Painting", "1", "La Gioconda", "A1", "Leonardo")}}
	second := &fakeMetadataSource{id: "second", objects: []Row{objectRow("Map", "2", "Mappa Mundi", "", "")}}

	app := newTestApp(is, Config{}, []MetadataSource{first, second}, nil)

	objects, err := app.GetAllCulturalHeritageObjects(ctx)
	is.NoErr(err)
	is.Equal(len(objects), 1)
	is.Equal(second.calls, 0) // second source should not be queried

	painting, ok := objects[0].(*heritage.Painting)
	is.True(ok)
	is.Equal(painting.Title(), "La Gioconda")
	is.Equal(painting.Type(), heritage.PaintingType)
	is.Equal(painting.Authors(), []heritage.Person{heritage.NewPerson("A1", "Leonardo")})
}

func TestGetAllObjectsWithUnionStrategyMergesSources(t *testing.T) {
	is, ctx := testSetup(t)

	first := &fakeMetadataSource{id: "first", objects: []Row{objectRow("Painting", "1", "La Gioconda", "", "")}}
	second := &fakeMetadataSource{id: "second", objects: []Row{
		objectRow("Painting", "1.0", "Mona Lisa", "", ""),
		objectRow("Map", "2", "Mappa Mundi", "", ""),
	}}

	cfg := Config{MergeStrategies: MergeStrategies{Objects: MergeUnion}}
	app := newTestApp(is, cfg, []MetadataSource{first, second}, nil)

	objects, err := app.GetAllCulturalHeritageObjects(ctx)
	is.NoErr(err)
	is.Equal(len(objects), 2)                   // object 1.0 should be recognized as object 1
	is.Equal(objects[0].Title(), "La Gioconda") // first seen object should win
	is.Equal(objects[1].Type(), heritage.MapType)
}

func TestObjectWithoutAuthorHasEmptyAuthorList(t *testing.T) {
	is, ctx := testSetup(t)

	src := &fakeMetadataSource{id: "src", objects: []Row{objectRow("Herbarium", "7", "Erbario", "", "")}}
	app := newTestApp(is, Config{}, []MetadataSource{src}, nil)

	objects, err := app.GetAllCulturalHeritageObjects(ctx)
	is.NoErr(err)
	is.Equal(len(objects), 1)
	is.True(objects[0].Authors() != nil)
	is.Equal(len(objects[0].Authors()), 0)
}

func TestObjectsWithUnknownTypeAreSkipped(t *testing.T) {
	is, ctx := testSetup(t)

	src := &fakeMetadataSource{id: "src", objects: []Row{
		objectRow("Sculpture", "1", "David", "", ""),
		objectRow("Model", "2", "Armillary sphere", "", ""),
	}}
	app := newTestApp(is, Config{}, []MetadataSource{src}, nil)

	objects, err := app.GetAllCulturalHeritageObjects(ctx)
	is.NoErr(err)
	is.Equal(len(objects), 1) // unknown type should be skipped without failing the call
	is.Equal(objects[0].ID(), "2")
}

func TestObjectsWithoutIdentifierAreSkipped(t *testing.T) {
	is, ctx := testSetup(t)

	unidentified := objectRow("Painting", "", "Untitled", "A1", "Leonardo")
	unidentified[ColumnID] = nil

	src := &fakeMetadataSource{id: "src", objects: []Row{
		unidentified,
		objectRow("Map", "3", "Carta nautica", "", ""),
	}}
	app := newTestApp(is, Config{}, []MetadataSource{src}, nil)

	objects, err := app.GetAllCulturalHeritageObjects(ctx)
	is.NoErr(err)
	is.Equal(len(objects), 1) // an object without id can not be referred to and should be skipped
	is.Equal(objects[0].ID(), "3")
}

func TestMissingColumnIsAnError(t *testing.T) {
	is, ctx := testSetup(t)

	row := objectRow("Painting", "1", "La Gioconda", "", "")
	delete(row, ColumnTitle)

	src := &fakeMetadataSource{id: "src", objects: []Row{row}}
	app := newTestApp(is, Config{}, []MetadataSource{src}, nil)

	objects, err := app.GetAllCulturalHeritageObjects(ctx)
	is.True(errors.Is(err, herr.ErrMissingColumn))
	is.Equal(objects, nil) // no partial results on malformed rows
}

func TestSourceFailureIsPropagated(t *testing.T) {
	is, ctx := testSetup(t)

	src := &fakeProcessSource{id: "broken", err: errors.New("connection refused")}
	app := newTestApp(is, Config{}, nil, []ProcessSource{src})

	_, err := app.GetAllActivities(ctx)
	is.True(err != nil)
}

func TestGetAllActivitiesBuildsVariants(t *testing.T) {
	is, ctx := testSetup(t)

	acquisition := activityRow("Acquisition", int64(1), "Museo Galileo", "Rossi", "2020-01-01", "2020-01-10")
	acquisition[ColumnTechnique] = "photogrammetry"

	exporting := activityRow("Exporting", int64(1), "Museo Galileo", "Rossi", "2020-05-01", "2020-06-01")
	exporting[ColumnTechnique] = "ignored"

	src := &fakeProcessSource{id: "src", activities: []Row{acquisition, exporting}}
	app := newTestApp(is, Config{}, nil, []ProcessSource{src})

	activities, err := app.GetAllActivities(ctx)
	is.NoErr(err)
	is.Equal(len(activities), 2)

	a, ok := activities[0].(*heritage.Acquisition)
	is.True(ok)
	is.Equal(a.Technique(), "photogrammetry")
	is.Equal(a.RefersTo().ID(), "1")
	is.Equal(a.Tools(), []string{"camera", "tripod"})

	_, ok = activities[1].(*heritage.Exporting)
	is.True(ok)
	is.Equal(activities[1].Type(), heritage.ExportingType)
}

func TestActivitiesWithUnknownTypeAreSkipped(t *testing.T) {
	is, ctx := testSetup(t)

	src := &fakeProcessSource{id: "src", activities: []Row{
		activityRow("Restoration", "1", "Louvre", "Dupont", "2020-01-01", "2020-02-01"),
	}}
	app := newTestApp(is, Config{}, nil, []ProcessSource{src})

	activities, err := app.GetAllActivities(ctx)
	is.NoErr(err)
	is.True(activities != nil)
	is.Equal(len(activities), 0)
}

func TestGetActivitiesByResponsibleInstitutionDelegatesFiltering(t *testing.T) {
	is, ctx := testSetup(t)

	src := &fakeProcessSource{id: "src", activities: []Row{
		activityRow("Processing", "1", "Museo Galileo", "Rossi", "2020-01-01", "2020-02-01"),
		activityRow("Processing", "2", "Louvre", "Dupont", "2020-01-01", "2020-02-01"),
	}}
	app := newTestApp(is, Config{}, nil, []ProcessSource{src})

	activities, err := app.GetActivitiesByResponsibleInstitution(ctx, "museo")
	is.NoErr(err)
	is.Equal(len(activities), 1)
	is.Equal(activities[0].ResponsibleInstitute(), "Museo Galileo")
}

func TestSourcesCanBeAddedAndCleaned(t *testing.T) {
	is, ctx := testSetup(t)

	app := newTestApp(is, Config{}, nil, nil)
	app.AddMetadataSource(&fakeMetadataSource{id: "src", people: []Row{personRow("A1", "Leonardo")}})
	app.AddProcessSource(&fakeProcessSource{id: "src", activities: []Row{
		activityRow("Modelling", "1", "Museo Galileo", "Rossi", "2020-01-01", "2020-02-01"),
	}})

	people, err := app.GetAllPeople(ctx)
	is.NoErr(err)
	is.Equal(len(people), 1)

	activities, err := app.GetAllActivities(ctx)
	is.NoErr(err)
	is.Equal(len(activities), 1)

	app.CleanMetadataSources()
	app.CleanProcessSources()

	people, err = app.GetAllPeople(ctx)
	is.NoErr(err)
	is.Equal(len(people), 0)

	activities, err = app.GetAllActivities(ctx)
	is.NoErr(err)
	is.Equal(len(activities), 0)
}

func TestNewFailsOnInvalidMergeStrategy(t *testing.T) {
	is := is.New(t)

	_, err := New(Config{MergeStrategies: MergeStrategies{People: "intersect"}}, nil, nil)
	is.True(err != nil)
}

func testSetup(t *testing.T) (*is.I, context.Context) {
	is := is.New(t)
	return is, t.Context()
}

func newTestApp(is *is.I, cfg Config, metadata []MetadataSource, process []ProcessSource) Federation {
	app, err := New(cfg, metadata, process)
	is.NoErr(err)
	return app
}
