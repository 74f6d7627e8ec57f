package federation

import (
	"testing"

	"github.com/diwise/heritage-broker/pkg/heritage"
)

func TestGetAuthorsOfObjectsAcquiredInTimeFrame(t *testing.T) {
	is, ctx := testSetup(t)

	metadata, process := gioconda()
	app := newTestApp(is, Config{}, []MetadataSource{metadata}, []ProcessSource{process})

	authors, err := app.GetAuthorsOfObjectsAcquiredInTimeFrame(ctx, "2019-12-01", "2020-12-31")
	is.NoErr(err)
	is.Equal(authors, []heritage.Person{heritage.NewPerson("A1", "Leonardo")})
}

func TestGetAuthorsOfObjectsAcquiredInNarrowTimeFrame(t *testing.T) {
	is, ctx := testSetup(t)

	metadata, process := gioconda()
	app := newTestApp(is, Config{}, []MetadataSource{metadata}, []ProcessSource{process})

	authors, err := app.GetAuthorsOfObjectsAcquiredInTimeFrame(ctx, "2020-07-01", "2020-12-31")
	is.NoErr(err)
	is.True(authors != nil)
	is.Equal(len(authors), 0) // acquisition started before the window
}

func TestGetAuthorsOfObjectsAcquiredInTimeFrameRequiresExport(t *testing.T) {
	is, ctx := testSetup(t)

	metadata, _ := gioconda()
	process := &fakeProcessSource{id: "process", activities: []Row{
		activityRow("Acquisition", "1", "Museo Galileo", "Rossi", "2020-01-01", "2020-01-10"),
	}}
	app := newTestApp(is, Config{}, []MetadataSource{metadata}, []ProcessSource{process})

	authors, err := app.GetAuthorsOfObjectsAcquiredInTimeFrame(ctx, "2019-12-01", "2020-12-31")
	is.NoErr(err)
	is.Equal(len(authors), 0) // objects that were never exported should not match
}

func TestGetAuthorsOfObjectsAcquiredInTimeFrameMatchesNumericIDs(t *testing.T) {
	is, ctx := testSetup(t)

	metadata, _ := gioconda()
	process := &fakeProcessSource{id: "process", activities: []Row{
		activityRow("Acquisition", int64(1), "Museo Galileo", "Rossi", "2020-01-01", "2020-01-10"),
		activityRow("Exporting", 1.0, "Museo Galileo", "Rossi", "2020-05-01", "2020-06-01"),
	}}
	app := newTestApp(is, Config{}, []MetadataSource{metadata}, []ProcessSource{process})

	authors, err := app.GetAuthorsOfObjectsAcquiredInTimeFrame(ctx, "2019-12-01", "2020-12-31")
	is.NoErr(err)
	is.Equal(len(authors), 1)
}

func TestGetObjectsHandledByResponsibleInstitution(t *testing.T) {
	is, ctx := testSetup(t)

	metadata := &fakeMetadataSource{id: "metadata", objects: []Row{
		objectRow("Painting", "1", "La Gioconda", "A1", "Leonardo"),
		objectRow("Model", "2", "Armillary sphere", "", ""),
		objectRow("Map", "3", "Mappa Mundi", "", ""),
	}}
	process := &fakeProcessSource{id: "process", activities: []Row{
		activityRow("Acquisition", "2", "Museo Galileo", "Rossi", "2020-01-01", "2020-01-10"),
		activityRow("Processing", "2", "Museo Galileo", "Bianchi", "2020-02-01", "2020-02-10"),
		activityRow("Acquisition", "1", "Museo Galileo", "Rossi", "2020-03-01", "2020-03-10"),
		activityRow("Acquisition", "3", "Louvre", "Dupont", "2020-03-01", "2020-03-10"),
	}}
	app := newTestApp(is, Config{}, []MetadataSource{metadata}, []ProcessSource{process})

	objects, err := app.GetObjectsHandledByResponsibleInstitution(ctx, "galileo")
	is.NoErr(err)
	is.Equal(len(objects), 2) // each object should only be reported once
	is.Equal(objects[0].ID(), "2")
	is.Equal(objects[1].ID(), "1")
	is.Equal(objects[1].Title(), "La Gioconda")
}

func TestGetObjectsHandledByResponsiblePersonSkipsUnknownObjects(t *testing.T) {
	is, ctx := testSetup(t)

	metadata := &fakeMetadataSource{id: "metadata", objects: []Row{
		objectRow("Painting", "1", "La Gioconda", "A1", "Leonardo"),
	}}
	process := &fakeProcessSource{id: "process", activities: []Row{
		activityRow("Acquisition", "99", "Museo Galileo", "Rossi", "2020-01-01", "2020-01-10"),
		activityRow("Optimising", "1", "Museo Galileo", "Rossi", "2020-02-01", "2020-02-10"),
	}}
	app := newTestApp(is, Config{}, []MetadataSource{metadata}, []ProcessSource{process})

	objects, err := app.GetObjectsHandledByResponsiblePerson(ctx, "rossi")
	is.NoErr(err)
	is.Equal(len(objects), 1) // activity on object 99 should be skipped
	is.Equal(objects[0].ID(), "1")
}

func TestGetObjectsHandledByWithoutActivitiesDoesNotQueryMetadata(t *testing.T) {
	is, ctx := testSetup(t)

	metadata := &fakeMetadataSource{id: "metadata"}
	process := &fakeProcessSource{id: "process"}
	app := newTestApp(is, Config{}, []MetadataSource{metadata}, []ProcessSource{process})

	objects, err := app.GetObjectsHandledByResponsiblePerson(ctx, "nobody")
	is.NoErr(err)
	is.True(objects != nil)
	is.Equal(len(objects), 0)
	is.Equal(metadata.calls, 0)
}

func TestGetActivitiesOnObjectsAuthoredBy(t *testing.T) {
	is, ctx := testSetup(t)

	metadata := &fakeMetadataSource{id: "metadata", authored: map[string][]Row{
		"A1": {objectRow("Painting", "1", "La Gioconda", "A1", "Leonardo")},
	}}
	process := &fakeProcessSource{id: "process", activities: []Row{
		activityRow("Acquisition", int64(1), "Museo Galileo", "Rossi", "2020-01-01", "2020-01-10"),
		activityRow("Acquisition", int64(2), "Louvre", "Dupont", "2020-01-01", "2020-01-10"),
		activityRow("Exporting", int64(1), "Museo Galileo", "Rossi", "2020-05-01", "2020-06-01"),
	}}
	app := newTestApp(is, Config{}, []MetadataSource{metadata}, []ProcessSource{process})

	activities, err := app.GetActivitiesOnObjectsAuthoredBy(ctx, "A1")
	is.NoErr(err)
	is.Equal(len(activities), 2)
	is.Equal(activities[0].Type(), heritage.AcquisitionType)
	is.Equal(activities[1].Type(), heritage.ExportingType)

	activities, err = app.GetActivitiesOnObjectsAuthoredBy(ctx, "A9")
	is.NoErr(err)
	is.Equal(len(activities), 0)
	is.Equal(process.calls, 1) // unknown author should not query the process sources
}

func TestGetAcquisitionsByTechnique(t *testing.T) {
	is, ctx := testSetup(t)

	acquisition := activityRow("Acquisition", "1", "Museo Galileo", "Rossi", "2020-01-01", "2020-01-10")
	acquisition[ColumnTechnique] = "Laser scanning"

	process := &fakeProcessSource{id: "process", activities: []Row{
		acquisition,
		activityRow("Acquisition", "2", "Museo Galileo", "Rossi", "2020-01-01", "2020-01-10"),
	}}
	app := newTestApp(is, Config{}, nil, []ProcessSource{process})

	activities, err := app.GetAcquisitionsByTechnique(ctx, "laser")
	is.NoErr(err)
	is.Equal(len(activities), 1)
	is.Equal(activities[0].(*heritage.Acquisition).Technique(), "Laser scanning")
}

func gioconda() (*fakeMetadataSource, *fakeProcessSource) {
	metadata := &fakeMetadataSource{
		id:      "metadata",
		objects: []Row{objectRow("Painting", "1", "La Gioconda", "A1", "Leonardo")},
		authors: map[string][]Row{"1": {personRow("A1", "Leonardo")}},
	}

	process := &fakeProcessSource{id: "process", activities: []Row{
		activityRow("Acquisition", "1", "Museo Galileo", "Rossi", "2020-01-01", "2020-01-10"),
		activityRow("Exporting", "1", "Museo Galileo", "Rossi", "2020-05-01", "2020-06-01"),
	}}

	return metadata, process
}
