package heritage

type Person struct {
	id   string
	name string
}

func NewPerson(id, name string) Person {
	return Person{id: id, name: name}
}

func (p Person) ID() string   { return p.id }
func (p Person) Name() string { return p.name }

// ObjectRef points at a cultural heritage object by id only. It carries no
// descriptive metadata and is never a hydrated object.
type ObjectRef struct {
	id string
}

func NewObjectRef(id string) ObjectRef {
	return ObjectRef{id: id}
}

func (r ObjectRef) ID() string { return r.id }

// ObjectFields holds the descriptive attributes shared by every object variant
type ObjectFields struct {
	ID      string
	Title   string
	Date    string
	Owner   string
	Place   string
	Authors []Person
}

type objectImpl struct {
	typ     ObjectType
	id      string
	title   string
	date    string
	owner   string
	place   string
	authors []Person
}

func newObjectImpl(typ ObjectType, f ObjectFields) objectImpl {
	authors := make([]Person, len(f.Authors))
	copy(authors, f.Authors)

	return objectImpl{
		typ:     typ,
		id:      f.ID,
		title:   f.Title,
		date:    f.Date,
		owner:   f.Owner,
		place:   f.Place,
		authors: authors,
	}
}

func (o *objectImpl) ID() string       { return o.id }
func (o *objectImpl) Type() ObjectType { return o.typ }
func (o *objectImpl) Title() string    { return o.title }
func (o *objectImpl) Owner() string    { return o.owner }
func (o *objectImpl) Place() string    { return o.place }

// Date returns the creation date, or an empty string when it is not known
func (o *objectImpl) Date() string { return o.date }

func (o *objectImpl) Authors() []Person {
	authors := make([]Person, len(o.authors))
	copy(authors, o.authors)
	return authors
}

type NauticalChart struct{ objectImpl }
type ManuscriptPlate struct{ objectImpl }
type ManuscriptVolume struct{ objectImpl }
type PrintedVolume struct{ objectImpl }
type PrintedMaterial struct{ objectImpl }
type Herbarium struct{ objectImpl }
type Specimen struct{ objectImpl }
type Painting struct{ objectImpl }
type Model struct{ objectImpl }
type Map struct{ objectImpl }

// ActivityFields holds the attributes shared by every activity variant.
// Technique is only kept by acquisitions.
type ActivityFields struct {
	RefersTo  ObjectRef
	Institute string
	Person    string
	Tools     []string
	Start     string
	End       string
	Technique string
}

type activityImpl struct {
	typ       ActivityType
	refersTo  ObjectRef
	institute string
	person    string
	tools     []string
	start     string
	end       string
}

func newActivityImpl(typ ActivityType, f ActivityFields) activityImpl {
	tools := make([]string, len(f.Tools))
	copy(tools, f.Tools)

	return activityImpl{
		typ:       typ,
		refersTo:  f.RefersTo,
		institute: f.Institute,
		person:    f.Person,
		tools:     tools,
		start:     f.Start,
		end:       f.End,
	}
}

func (a *activityImpl) Type() ActivityType           { return a.typ }
func (a *activityImpl) RefersTo() ObjectRef          { return a.refersTo }
func (a *activityImpl) ResponsibleInstitute() string { return a.institute }
func (a *activityImpl) ResponsiblePerson() string    { return a.person }
func (a *activityImpl) StartDate() string            { return a.start }
func (a *activityImpl) EndDate() string              { return a.end }

func (a *activityImpl) Tools() []string {
	tools := make([]string, len(a.tools))
	copy(tools, a.tools)
	return tools
}

type Acquisition struct {
	activityImpl
	technique string
}

func (a *Acquisition) Technique() string { return a.technique }

type Processing struct{ activityImpl }
type Modelling struct{ activityImpl }
type Optimising struct{ activityImpl }
type Exporting struct{ activityImpl }
