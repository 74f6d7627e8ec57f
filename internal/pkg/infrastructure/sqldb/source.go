package sqldb

import (
	"context"
	"fmt"
	"strings"

	"github.com/diwise/heritage-broker/internal/pkg/application/federation"
	"github.com/diwise/heritage-broker/pkg/heritage"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	DriverSQLite   string = "sqlite3"
	DriverPostgres string = "pgx"

	TraceAttributeSourceID string = "source-id"
)

var tracer = otel.Tracer("heritage-broker/sqldb")

// Source is a process source that reads activities from one table per activity
// type. Every table has the columns object_id, responsible_institute,
// responsible_person, tool, start_date and end_date. The Acquisition table
// also has a technique column.
type Source struct {
	id string
	db *sqlx.DB
}

func Open(ctx context.Context, id, driver, dsn string) (*Source, error) {
	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driver, err)
	}

	err = db.PingContext(ctx)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to %s database: %w", driver, err)
	}

	logging.GetFromContext(ctx).Info("connected to process source", "source", id, "driver", driver)

	return New(id, db), nil
}

func New(id string, db *sqlx.DB) *Source {
	return &Source{id: id, db: db}
}

func (s *Source) ID() string {
	return s.id
}

func (s *Source) Close() error {
	return s.db.Close()
}

func (s *Source) GetAllActivities(ctx context.Context) ([]federation.Row, error) {
	return s.query(ctx, "get-all-activities", heritage.ActivityTypes(), "")
}

func (s *Source) GetActivitiesByResponsibleInstitution(ctx context.Context, institution string) ([]federation.Row, error) {
	return s.containing(ctx, "get-activities-by-institution", heritage.ActivityTypes(), federation.ColumnResponsibleInstitute, institution)
}

func (s *Source) GetActivitiesByResponsiblePerson(ctx context.Context, person string) ([]federation.Row, error) {
	return s.containing(ctx, "get-activities-by-person", heritage.ActivityTypes(), federation.ColumnResponsiblePerson, person)
}

func (s *Source) GetActivitiesUsingTool(ctx context.Context, tool string) ([]federation.Row, error) {
	return s.containing(ctx, "get-activities-using-tool", heritage.ActivityTypes(), federation.ColumnTool, tool)
}

func (s *Source) GetActivitiesStartedAfter(ctx context.Context, date string) ([]federation.Row, error) {
	return s.query(ctx, "get-activities-started-after", heritage.ActivityTypes(), federation.ColumnStartDate+" >= ?", date)
}

func (s *Source) GetActivitiesEndedBefore(ctx context.Context, date string) ([]federation.Row, error) {
	return s.query(ctx, "get-activities-ended-before", heritage.ActivityTypes(), federation.ColumnEndDate+" <= ?", date)
}

func (s *Source) GetAcquisitionsByTechnique(ctx context.Context, technique string) ([]federation.Row, error) {
	return s.containing(ctx, "get-acquisitions-by-technique", []heritage.ActivityType{heritage.AcquisitionType}, federation.ColumnTechnique, technique)
}

// containing returns the activities whose column contains needle, ignoring case.
// Matching is always decided by comparing lower cased strings in Go. SQLite only
// folds ASCII letters, so the LIKE prefilter is only pushed down to postgres.
func (s *Source) containing(ctx context.Context, operation string, types []heritage.ActivityType, column, needle string) ([]federation.Row, error) {
	needle = strings.ToLower(needle)

	condition, args := column+" IS NOT NULL", []any{}
	if s.db.DriverName() == DriverPostgres {
		condition = like(column)
		args = append(args, contains(needle))
	}

	rows, err := s.query(ctx, operation, types, condition, args...)
	if err != nil {
		return nil, err
	}

	result := []federation.Row{}
	for _, row := range rows {
		haystack, ok := row[column].(string)
		if ok && strings.Contains(strings.ToLower(haystack), needle) {
			result = append(result, row)
		}
	}

	return result, nil
}

// query runs a statement built by activitiesWhere, binding arg once per activity table
func (s *Source) query(ctx context.Context, operation string, types []heritage.ActivityType, condition string, arg ...any) ([]federation.Row, error) {
	args := []any{}
	for range types {
		args = append(args, arg...)
	}

	return s.queryOnce(ctx, operation, activitiesWhere(types, condition), args...)
}

func (s *Source) queryOnce(ctx context.Context, operation, q string, args ...any) (result []federation.Row, err error) {
	ctx, span := tracer.Start(ctx, operation,
		trace.WithAttributes(attribute.String(TraceAttributeSourceID, s.id)),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	rows, err := s.db.QueryxContext(ctx, s.db.Rebind(q), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query process source: %w", err)
	}
	defer rows.Close()

	result = []federation.Row{}

	for rows.Next() {
		row := map[string]any{}
		err = rows.MapScan(row)
		if err != nil {
			return nil, fmt.Errorf("failed to scan activity row: %w", err)
		}

		// some drivers report text columns as raw bytes
		for column, value := range row {
			if b, ok := value.([]byte); ok {
				row[column] = string(b)
			}
		}

		result = append(result, federation.Row(row))
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	return result, nil
}

func selectActivity(activityType heritage.ActivityType) string {
	technique := "NULL"
	if activityType == heritage.AcquisitionType {
		technique = federation.ColumnTechnique
	}

	return fmt.Sprintf(
		"SELECT object_id, responsible_institute, responsible_person, %s AS technique, tool, start_date, end_date, '%s' AS type FROM %s",
		technique, activityType, activityType,
	)
}

// activitiesWhere returns a statement that selects the activities of the given
// types matching the condition, in the order the types are given
func activitiesWhere(types []heritage.ActivityType, condition string) string {
	selects := []string{}

	for _, t := range types {
		stmt := selectActivity(t)
		if condition != "" {
			stmt = stmt + " WHERE " + condition
		}
		selects = append(selects, stmt)
	}

	return strings.Join(selects, " UNION ALL ")
}

func like(column string) string {
	return "LOWER(" + column + `) LIKE ? ESCAPE '\'`
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// contains returns a LIKE pattern matching s anywhere, with wildcards in s taken literally
func contains(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
