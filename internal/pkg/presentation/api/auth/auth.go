package auth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/open-policy-agent/opa/rego"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("heritage-broker/api/authz")

var ErrAccessDenied = errors.New("access denied by policy")

// PolicyQuery is evaluated against the loaded rego module. A policy grants access
// by binding allow to an object and denies it by leaving allow false.
const PolicyQuery string = "x = data.example.authz.allow"

// Authorizer decides if a read request against the api may be served
type Authorizer interface {
	CheckAccess(ctx context.Context, r *http.Request) error
}

type policyAuthorizer struct {
	query rego.PreparedEvalQuery
}

func NewAuthorizer(ctx context.Context, policies io.Reader) (Authorizer, error) {
	module, err := io.ReadAll(policies)
	if err != nil {
		return nil, fmt.Errorf("unable to read authz policies: %w", err)
	}

	query, err := rego.New(
		rego.Query(PolicyQuery),
		rego.Module("heritage-broker.rego", string(module)),
	).PrepareForEval(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare authz policies: %w", err)
	}

	return &policyAuthorizer{query: query}, nil
}

// PolicyInput is what a policy sees of a request: the http method, the request
// path split into its segments and the bearer token, if any.
type PolicyInput struct {
	Method string   `json:"method"`
	Path   []string `json:"path"`
	Token  string   `json:"token"`
}

func NewPolicyInput(r *http.Request) PolicyInput {
	token := r.Header.Get("Authorization")
	if len(token) > 7 && strings.EqualFold(token[:7], "bearer ") {
		token = token[7:]
	}

	return PolicyInput{
		Method: r.Method,
		Path:   strings.Split(strings.Trim(r.URL.Path, "/"), "/"),
		Token:  token,
	}
}

func (a *policyAuthorizer) CheckAccess(ctx context.Context, r *http.Request) (err error) {
	input := NewPolicyInput(r)

	ctx, span := tracer.Start(ctx, "check-access",
		trace.WithAttributes(attribute.String("method", input.Method)),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	results, err := a.query.Eval(ctx, rego.EvalInput(map[string]any{
		"method": input.Method,
		"path":   input.Path,
		"token":  input.Token,
	}))
	if err != nil {
		return fmt.Errorf("opa eval failed: %w", err)
	}

	if len(results) == 0 {
		return fmt.Errorf("opa query could not be satisfied: %w", ErrAccessDenied)
	}

	return decision(results[0].Bindings["x"])
}

func decision(binding any) error {
	switch allow := binding.(type) {
	case bool:
		if !allow {
			return ErrAccessDenied
		}
		return errors.New("opa error: policy must bind allow to an object")
	case map[string]any:
		return nil
	default:
		return fmt.Errorf("opa error: unexpected result type %T", binding)
	}
}
