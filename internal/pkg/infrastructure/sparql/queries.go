package sparql

import (
	"strings"

	"github.com/diwise/heritage-broker/pkg/heritage"
)

const prefixes string = `PREFIX rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#>
PREFIX rdfs: <http://www.w3.org/2000/01/rdf-schema#>
PREFIX schema: <https://schema.org/>
`

const byIDQuery string = prefixes + `
SELECT ?identifier ?name ?title
WHERE {
  ?entity schema:identifier %s .
  ?entity schema:creator ?author .
  ?entity schema:name ?title .
  ?author rdfs:label ?name .
  ?author schema:identifier ?identifier .
}`

const allPeopleQuery string = prefixes + `
SELECT ?id ?name
WHERE {
  ?entity schema:creator ?author .
  ?author rdfs:label ?name .
  ?author schema:identifier ?id .
}`

const authorsOfObjectQuery string = prefixes + `
SELECT ?id ?name
WHERE {
  ?entity schema:identifier %s .
  ?entity schema:creator ?author .
  ?author rdfs:label ?name .
  ?author schema:identifier ?id .
}`

var allObjectsQuery string = prefixes + `
SELECT (REPLACE(STR(?type), "https://schema.org/", "") AS ?type_name) ?id ?title ?date ?owner ?place ?author_id ?author_name
WHERE {
  ?object rdf:type ?type .
  ?object schema:identifier ?id .
  ?object schema:name ?title .
  OPTIONAL { ?object schema:dateCreated ?date }
  OPTIONAL { ?object schema:provider ?o }
  OPTIONAL { ?object schema:contentLocation ?p }
  OPTIONAL {
    ?object schema:creator ?author .
    ?author schema:identifier ?author_id .
    ?author rdfs:label ?author_name .
  }
  BIND(COALESCE(?o, "` + heritage.UnknownValue + `") AS ?owner)
  BIND(COALESCE(?p, "` + heritage.UnknownValue + `") AS ?place)
  FILTER(?type IN (` + typeFilter() + `))
}`

var objectsAuthoredByQuery string = prefixes + `
SELECT ?type_name ?id ?title ?date ?owner ?place ?author_id ?author_name
WHERE {
  ?author schema:identifier %s .
  ?object schema:creator ?author .
  ?object rdf:type ?type .
  ?object schema:name ?title .
  ?object schema:identifier ?id .
  OPTIONAL { ?object schema:dateCreated ?date }
  OPTIONAL { ?object schema:provider ?o }
  OPTIONAL { ?object schema:contentLocation ?p }
  ?author schema:identifier ?author_id .
  ?author rdfs:label ?author_name .
  BIND(REPLACE(STR(?type), "https://schema.org/", "") AS ?type_name)
  BIND(COALESCE(?o, "` + heritage.UnknownValue + `") AS ?owner)
  BIND(COALESCE(?p, "` + heritage.UnknownValue + `") AS ?place)
}`

func typeFilter() string {
	types := heritage.ObjectTypes()
	iris := make([]string, 0, len(types))

	for _, t := range types {
		iris = append(iris, "<https://schema.org/"+string(t)+">")
	}

	return strings.Join(iris, ", ")
}

var literalEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
)

// literal returns s as a quoted SPARQL string literal
func literal(s string) string {
	return `"` + literalEscaper.Replace(s) + `"`
}
