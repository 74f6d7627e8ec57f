package main

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/diwise/heritage-broker/internal/pkg/infrastructure/sparql"
	"github.com/diwise/heritage-broker/internal/pkg/infrastructure/sqldb"
	testutils "github.com/diwise/service-chassis/pkg/test/http"
	"github.com/diwise/service-chassis/pkg/test/http/expects"
	"github.com/diwise/service-chassis/pkg/test/http/response"
	"github.com/jmoiron/sqlx"

	"github.com/matryer/is"
)

var Expects = testutils.Expects
var Returns = testutils.Returns
var method = expects.RequestMethod
var bodyContaining = expects.RequestBodyContaining

func TestIntegrateAuthorsOfObjectsAcquiredInTimeFrame(t *testing.T) {
	is := is.New(t)

	ms := testutils.NewMockServiceThat(
		Expects(
			is,
			method(http.MethodPost),
			bodyContaining(`schema:identifier "1"`),
		),
		Returns(
			response.ContentType(sparql.ContentTypeSparqlResults),
			response.Code(http.StatusOK),
			response.Body([]byte(authorsResponse)),
		),
	)
	defer ms.Close()

	handler, closeSources, err := initialize(t.Context(), DefaultFlags(),
		newTestConfig(ms.URL(), newTestDatabase(t)),
		bytes.NewBufferString(opaModule),
	)
	is.NoErr(err)
	defer closeSources()

	ts := httptest.NewServer(handler)
	defer ts.Close()

	resp, body := testRequest(is, ts, "/api/v1/people?acquiredAfter=2019-12-01&exportedBefore=2020-12-31")
	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(body, `[{"id":"A1","name":"Leonardo"}]`)
	is.Equal(ms.RequestCount(), 1)

	resp, body = testRequest(is, ts, "/api/v1/people?acquiredAfter=2020-07-01&exportedBefore=2020-12-31")
	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(body, `[]`)
	is.Equal(ms.RequestCount(), 1) // no acquisitions in the window, so metadata should not be queried
}

func TestIntegrateActivitiesByInstitution(t *testing.T) {
	is := is.New(t)

	handler, closeSources, err := initialize(t.Context(), DefaultFlags(),
		newTestConfig("http://127.0.0.1:1/sparql", newTestDatabase(t)),
		bytes.NewBufferString(opaModule),
	)
	is.NoErr(err)
	defer closeSources()

	ts := httptest.NewServer(handler)
	defer ts.Close()

	resp, body := testRequest(is, ts, "/api/v1/activities?institution=museo")
	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(body, `[{"type":"Acquisition","refersTo":{"id":"1"},"responsibleInstitute":"Museo Galileo","responsiblePerson":"Rossi","technique":"Photogrammetry","tools":["Nikon D7200","tripod"],"startDate":"2020-01-01","endDate":"2020-01-10"}]`)
}

func TestIntegrateUnreachableMetadataSourceIsABadGateway(t *testing.T) {
	is := is.New(t)

	handler, closeSources, err := initialize(t.Context(), DefaultFlags(),
		newTestConfig("http://127.0.0.1:1/sparql", newTestDatabase(t)),
		bytes.NewBufferString(opaModule),
	)
	is.NoErr(err)
	defer closeSources()

	ts := httptest.NewServer(handler)
	defer ts.Close()

	resp, _ := testRequest(is, ts, "/api/v1/people")
	is.Equal(resp.StatusCode, http.StatusBadGateway)
}

func TestInitializeFailsOnBrokenConfiguration(t *testing.T) {
	is := is.New(t)

	_, _, err := initialize(t.Context(), DefaultFlags(),
		bytes.NewBufferString("mergeStrategies:\n  people: sometimes\n"),
		bytes.NewBufferString(opaModule),
	)
	is.True(err != nil)
}

func testRequest(is *is.I, ts *httptest.Server, path string) (*http.Response, string) {
	resp, err := http.Get(ts.URL + path)
	is.NoErr(err)
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	is.NoErr(err)

	return resp, string(respBody)
}

func newTestDatabase(t *testing.T) string {
	is := is.New(t)

	path := filepath.Join(t.TempDir(), "process.db")

	db, err := sqlx.Open(sqldb.DriverSQLite, path)
	is.NoErr(err)
	defer db.Close()

	for _, stmt := range processSchema {
		db.MustExec(stmt)
	}

	return path
}

func newTestConfig(sparqlEndpoint, databasePath string) io.Reader {
	return bytes.NewBufferString(fmt.Sprintf(configFileFmt, sparqlEndpoint, databasePath))
}

var configFileFmt string = `
metadataSources:
  - id: blazegraph
    endpoint: %s
processSources:
  - id: activities
    driver: sqlite3
    dsn: %s
`

var processSchema = []string{
	`CREATE TABLE Acquisition (object_id TEXT, responsible_institute TEXT, responsible_person TEXT, technique TEXT, tool TEXT, start_date TEXT, end_date TEXT)`,
	`CREATE TABLE Processing (object_id TEXT, responsible_institute TEXT, responsible_person TEXT, tool TEXT, start_date TEXT, end_date TEXT)`,
	`CREATE TABLE Modelling (object_id TEXT, responsible_institute TEXT, responsible_person TEXT, tool TEXT, start_date TEXT, end_date TEXT)`,
	`CREATE TABLE Optimising (object_id TEXT, responsible_institute TEXT, responsible_person TEXT, tool TEXT, start_date TEXT, end_date TEXT)`,
	`CREATE TABLE Exporting (object_id TEXT, responsible_institute TEXT, responsible_person TEXT, tool TEXT, start_date TEXT, end_date TEXT)`,

	`INSERT INTO Acquisition VALUES ('1', 'Museo Galileo', 'Rossi', 'Photogrammetry', 'Nikon D7200, tripod', '2020-01-01', '2020-01-10')`,
	`INSERT INTO Exporting VALUES ('1', 'Louvre', 'Dupont', 'Sketchfab', '2020-05-01', '2020-06-01')`,
}

const opaModule string = `
package example.authz

default allow := false

allow = response {
    response := {
    }
}
`

const authorsResponse string = `{
  "head": {"vars": ["id", "name"]},
  "results": {"bindings": [
    {"id": {"type": "literal", "value": "A1"}, "name": {"type": "literal", "value": "Leonardo"}}
  ]}
}`
