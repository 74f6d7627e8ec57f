package federation

import (
	"context"
	"fmt"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

type rowKeyFunc func(sourcedRow) (string, error)

type namedSource interface {
	ID() string
}

// resolve drops every row whose key has already been seen. The first occurrence
// wins and the relative order of the remaining rows is preserved.
func resolve(ctx context.Context, rows []sourcedRow, key rowKeyFunc) ([]sourcedRow, error) {
	seen := make(map[string]struct{}, len(rows))
	result := make([]sourcedRow, 0, len(rows))
	dropped := 0

	for _, r := range rows {
		k, err := key(r)
		if err != nil {
			return nil, err
		}

		if _, ok := seen[k]; ok {
			dropped++
			continue
		}

		seen[k] = struct{}{}
		result = append(result, r)
	}

	if dropped > 0 {
		logging.GetFromContext(ctx).Debug("dropped duplicate rows", "count", dropped)
	}

	return result, nil
}

// collect runs query against the sources selected by strategy and merges the results
func collect[S namedSource](ctx context.Context, strategy MergeStrategy, sources []S, query func(S) ([]Row, error), key rowKeyFunc) ([]sourcedRow, error) {
	if strategy == MergeFirst && len(sources) > 1 {
		sources = sources[:1]
	}

	rows := []sourcedRow{}

	for _, src := range sources {
		result, err := query(src)
		if err != nil {
			return nil, fmt.Errorf("query against source %s failed: %w", src.ID(), err)
		}

		for _, r := range result {
			rows = append(rows, sourcedRow{source: src.ID(), row: r})
		}
	}

	if strategy == MergeUnion {
		return resolve(ctx, rows, key)
	}

	return rows, nil
}

func columnKey(column string) rowKeyFunc {
	return func(sr sourcedRow) (string, error) {
		rr := read(sr)
		value := rr.required(column)
		return value, rr.err
	}
}

func objectKey(sr sourcedRow) (string, error) {
	rr := read(sr)
	id := rr.required(ColumnID)
	return normalizeID(id), rr.err
}

func activityKey(sr sourcedRow) (string, error) {
	rr := read(sr)
	key := fmt.Sprintf("%s|%s|%s|%s|%s",
		rr.required(ColumnType),
		normalizeID(rr.required(ColumnObjectID)),
		rr.required(ColumnResponsibleInstitute),
		rr.required(ColumnStartDate),
		rr.required(ColumnEndDate),
	)
	return key, rr.err
}
