package api

import (
	"github.com/diwise/heritage-broker/pkg/heritage"
)

type personDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type objectDTO struct {
	ID      string      `json:"id"`
	Type    string      `json:"type"`
	Title   string      `json:"title"`
	Date    string      `json:"date,omitempty"`
	Owner   string      `json:"owner"`
	Place   string      `json:"place"`
	Authors []personDTO `json:"authors"`
}

type objectRefDTO struct {
	ID string `json:"id"`
}

type activityDTO struct {
	Type                 string       `json:"type"`
	RefersTo             objectRefDTO `json:"refersTo"`
	ResponsibleInstitute string       `json:"responsibleInstitute"`
	ResponsiblePerson    string       `json:"responsiblePerson,omitempty"`
	Technique            string       `json:"technique,omitempty"`
	Tools                []string     `json:"tools"`
	StartDate            string       `json:"startDate,omitempty"`
	EndDate              string       `json:"endDate,omitempty"`
}

type techniqueProvider interface {
	Technique() string
}

func toPeople(people []heritage.Person) []personDTO {
	result := make([]personDTO, 0, len(people))
	for _, p := range people {
		result = append(result, personDTO{ID: p.ID(), Name: p.Name()})
	}
	return result
}

func toObjects(objects []heritage.CulturalHeritageObject) []objectDTO {
	result := make([]objectDTO, 0, len(objects))
	for _, o := range objects {
		result = append(result, objectDTO{
			ID:      o.ID(),
			Type:    string(o.Type()),
			Title:   o.Title(),
			Date:    o.Date(),
			Owner:   o.Owner(),
			Place:   o.Place(),
			Authors: toPeople(o.Authors()),
		})
	}
	return result
}

func toActivities(activities []heritage.Activity) []activityDTO {
	result := make([]activityDTO, 0, len(activities))
	for _, a := range activities {
		dto := activityDTO{
			Type:                 string(a.Type()),
			RefersTo:             objectRefDTO{ID: a.RefersTo().ID()},
			ResponsibleInstitute: a.ResponsibleInstitute(),
			ResponsiblePerson:    a.ResponsiblePerson(),
			Tools:                a.Tools(),
			StartDate:            a.StartDate(),
			EndDate:              a.EndDate(),
		}

		if tp, ok := a.(techniqueProvider); ok {
			dto.Technique = tp.Technique()
		}

		result = append(result, dto)
	}
	return result
}
