package sparql

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"net/url"

	"github.com/diwise/heritage-broker/internal/pkg/application/federation"
	"github.com/diwise/heritage-broker/pkg/heritage/errors"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	ContentTypeSparqlQuery   string = "application/sparql-query"
	ContentTypeSparqlResults string = "application/sparql-results+json"

	TraceAttributeSourceID string = "source-id"
)

var tracer = otel.Tracer("heritage-broker/sparql")

func Debug(enabled bool) func(*Client) {
	return func(c *Client) {
		c.debug = enabled
	}
}

// DefaultGraph restricts every query to the named graph
func DefaultGraph(graph string) func(*Client) {
	return func(c *Client) {
		c.defaultGraph = graph
	}
}

// Client is a metadata source that answers queries from a SPARQL 1.1 endpoint
type Client struct {
	id           string
	endpoint     string
	defaultGraph string
	debug        bool
	httpClient   http.Client
}

func New(id, endpoint string, options ...func(*Client)) *Client {
	c := &Client{
		id:       id,
		endpoint: endpoint,
		httpClient: http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}

	for _, option := range options {
		option(c)
	}

	return c
}

func (c *Client) ID() string {
	return c.id
}

func (c *Client) GetByID(ctx context.Context, id string) ([]federation.Row, error) {
	return c.query(ctx, "get-by-id", fmt.Sprintf(byIDQuery, literal(id)))
}

func (c *Client) GetAllPeople(ctx context.Context) ([]federation.Row, error) {
	return c.query(ctx, "get-all-people", allPeopleQuery)
}

func (c *Client) GetAllCulturalHeritageObjects(ctx context.Context) ([]federation.Row, error) {
	return c.query(ctx, "get-all-objects", allObjectsQuery)
}

func (c *Client) GetAuthorsOfCulturalHeritageObject(ctx context.Context, objectID string) ([]federation.Row, error) {
	return c.query(ctx, "get-authors-of-object", fmt.Sprintf(authorsOfObjectQuery, literal(objectID)))
}

func (c *Client) GetCulturalHeritageObjectsAuthoredBy(ctx context.Context, authorID string) ([]federation.Row, error) {
	return c.query(ctx, "get-objects-authored-by", fmt.Sprintf(objectsAuthoredByQuery, literal(authorID)))
}

type results struct {
	Head struct {
		Vars []string `json:"vars"`
	} `json:"head"`
	Results struct {
		Bindings []map[string]binding `json:"bindings"`
	} `json:"results"`
}

type binding struct {
	Type     string `json:"type"`
	Value    string `json:"value"`
	Datatype string `json:"datatype,omitempty"`
}

func (c *Client) query(ctx context.Context, operation, query string) (rows []federation.Row, err error) {
	ctx, span := tracer.Start(ctx, operation,
		trace.WithAttributes(attribute.String(TraceAttributeSourceID, c.id)),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	resp, respBody, err := c.callEndpoint(ctx, query)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		err = fmt.Errorf("sparql endpoint returned status code %d (%w)", resp.StatusCode, errors.ErrBadResponse)
		return nil, err
	}

	var r results
	err = json.Unmarshal(respBody, &r)
	if err != nil {
		if c.debug && len(respBody) < 1000 {
			err = fmt.Errorf("unmarshaling of %s failed with err %s (%w)", string(respBody), err.Error(), errors.ErrBadResponse)
		} else {
			err = fmt.Errorf("failed to unmarshal query results: %s (%w)", err.Error(), errors.ErrBadResponse)
		}
		return nil, err
	}

	rows = make([]federation.Row, 0, len(r.Results.Bindings))

	// variables that are left unbound by OPTIONAL patterns are still reported as columns
	for _, b := range r.Results.Bindings {
		row := make(federation.Row, len(r.Head.Vars))
		for _, v := range r.Head.Vars {
			if value, ok := b[v]; ok {
				row[v] = value.Value
			} else {
				row[v] = nil
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func (c *Client) callEndpoint(ctx context.Context, query string) (*http.Response, []byte, error) {
	endpoint := c.endpoint
	if c.defaultGraph != "" {
		endpoint = endpoint + "?" + url.Values{"default-graph-uri": {c.defaultGraph}}.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBufferString(query))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create request: %s (%w)", err.Error(), errors.ErrInternal)
	}

	req.Header.Add("Content-Type", ContentTypeSparqlQuery)
	req.Header.Add("Accept", ContentTypeSparqlResults)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to send request: %s (%w)", err.Error(), errors.ErrRequest)
	}

	defer resp.Body.Close()
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read response body: %s (%w)", err.Error(), errors.ErrBadResponse)
	}

	if c.debug && resp.StatusCode >= http.StatusBadRequest {
		reqbytes, _ := httputil.DumpRequest(req, false)
		respbytes, _ := httputil.DumpResponse(resp, false)

		logging.GetFromContext(ctx).Error("sparql query failed",
			"request", string(reqbytes), "response", string(respbytes), "query", query)
	}

	return resp, respBody, nil
}
