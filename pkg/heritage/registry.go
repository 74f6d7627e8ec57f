package heritage

import (
	"github.com/diwise/heritage-broker/pkg/heritage/errors"
)

type objectConstructor func(ObjectFields) CulturalHeritageObject
type activityConstructor func(ActivityFields) Activity

var objectTypes = []ObjectType{
	NauticalChartType, ManuscriptPlateType, ManuscriptVolumeType, PrintedVolumeType,
	PrintedMaterialType, HerbariumType, SpecimenType, PaintingType, ModelType, MapType,
}

var activityTypes = []ActivityType{
	AcquisitionType, ProcessingType, ModellingType, OptimisingType, ExportingType,
}

var objectConstructors = map[ObjectType]objectConstructor{
	NauticalChartType: func(f ObjectFields) CulturalHeritageObject {
		return &NauticalChart{newObjectImpl(NauticalChartType, f)}
	},
	ManuscriptPlateType: func(f ObjectFields) CulturalHeritageObject {
		return &ManuscriptPlate{newObjectImpl(ManuscriptPlateType, f)}
	},
	ManuscriptVolumeType: func(f ObjectFields) CulturalHeritageObject {
		return &ManuscriptVolume{newObjectImpl(ManuscriptVolumeType, f)}
	},
	PrintedVolumeType: func(f ObjectFields) CulturalHeritageObject {
		return &PrintedVolume{newObjectImpl(PrintedVolumeType, f)}
	},
	PrintedMaterialType: func(f ObjectFields) CulturalHeritageObject {
		return &PrintedMaterial{newObjectImpl(PrintedMaterialType, f)}
	},
	HerbariumType: func(f ObjectFields) CulturalHeritageObject {
		return &Herbarium{newObjectImpl(HerbariumType, f)}
	},
	SpecimenType: func(f ObjectFields) CulturalHeritageObject {
		return &Specimen{newObjectImpl(SpecimenType, f)}
	},
	PaintingType: func(f ObjectFields) CulturalHeritageObject {
		return &Painting{newObjectImpl(PaintingType, f)}
	},
	ModelType: func(f ObjectFields) CulturalHeritageObject {
		return &Model{newObjectImpl(ModelType, f)}
	},
	MapType: func(f ObjectFields) CulturalHeritageObject {
		return &Map{newObjectImpl(MapType, f)}
	},
}

var activityConstructors = map[ActivityType]activityConstructor{
	AcquisitionType: func(f ActivityFields) Activity {
		return &Acquisition{activityImpl: newActivityImpl(AcquisitionType, f), technique: f.Technique}
	},
	ProcessingType: func(f ActivityFields) Activity {
		return &Processing{newActivityImpl(ProcessingType, f)}
	},
	ModellingType: func(f ActivityFields) Activity {
		return &Modelling{newActivityImpl(ModellingType, f)}
	},
	OptimisingType: func(f ActivityFields) Activity {
		return &Optimising{newActivityImpl(OptimisingType, f)}
	},
	ExportingType: func(f ActivityFields) Activity {
		return &Exporting{newActivityImpl(ExportingType, f)}
	},
}

// NewObject constructs the object variant selected by tag. Tags are matched exactly.
// An unrecognized tag yields a nil object and an error matching errors.ErrUnknownType.
func NewObject(tag string, fields ObjectFields) (CulturalHeritageObject, error) {
	construct, ok := objectConstructors[ObjectType(tag)]
	if !ok {
		return nil, errors.NewUnknownTypeError(tag)
	}

	return construct(fields), nil
}

// NewActivity constructs the activity variant selected by tag. Tags are matched exactly.
// An unrecognized tag yields a nil activity and an error matching errors.ErrUnknownType.
func NewActivity(tag string, fields ActivityFields) (Activity, error) {
	construct, ok := activityConstructors[ActivityType(tag)]
	if !ok {
		return nil, errors.NewUnknownTypeError(tag)
	}

	return construct(fields), nil
}

func ObjectTypes() []ObjectType {
	types := make([]ObjectType, len(objectTypes))
	copy(types, objectTypes)
	return types
}

func ActivityTypes() []ActivityType {
	types := make([]ActivityType, len(activityTypes))
	copy(types, activityTypes)
	return types
}
