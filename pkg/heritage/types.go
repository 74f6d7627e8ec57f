package heritage

type ObjectType string

const (
	NauticalChartType    ObjectType = "NauticalChart"
	ManuscriptPlateType  ObjectType = "ManuscriptPlate"
	ManuscriptVolumeType ObjectType = "ManuscriptVolume"
	PrintedVolumeType    ObjectType = "PrintedVolume"
	PrintedMaterialType  ObjectType = "PrintedMaterial"
	HerbariumType        ObjectType = "Herbarium"
	SpecimenType         ObjectType = "Specimen"
	PaintingType         ObjectType = "Painting"
	ModelType            ObjectType = "Model"
	MapType              ObjectType = "Map"
)

type ActivityType string

const (
	AcquisitionType ActivityType = "Acquisition"
	ProcessingType  ActivityType = "Processing"
	ModellingType   ActivityType = "Modelling"
	OptimisingType  ActivityType = "Optimising"
	ExportingType   ActivityType = "Exporting"
)

// UnknownValue is what a metadata source reports for a missing owner or place
const UnknownValue string = "Unknown"

type Entity interface {
	ID() string
}

// CulturalHeritageObject is implemented by the ten object variants. The dynamic type
// of a value always matches what Type returns.
type CulturalHeritageObject interface {
	Entity

	Type() ObjectType
	Title() string
	Date() string
	Owner() string
	Place() string
	Authors() []Person
}

// Activity is implemented by the five activity variants. Activities are not
// identifiable on their own and only point at the object they were performed on.
type Activity interface {
	Type() ActivityType
	RefersTo() ObjectRef
	ResponsibleInstitute() string
	ResponsiblePerson() string
	Tools() []string
	StartDate() string
	EndDate() string
}
