package federation

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/diwise/heritage-broker/pkg/heritage/errors"
)

type sourcedRow struct {
	source string
	row    Row
}

// rowReader reads columns from a single row and remembers the first missing
// required column so that callers can check for errors once per row.
type rowReader struct {
	sr  sourcedRow
	err error
}

func read(sr sourcedRow) *rowReader {
	return &rowReader{sr: sr}
}

func (rr *rowReader) required(column string) string {
	if rr.err != nil {
		return ""
	}

	v, ok := rr.sr.row[column]
	if !ok {
		rr.err = errors.NewMissingColumnError(rr.sr.source, column)
		return ""
	}

	return asString(v)
}

func (rr *rowReader) optional(column string) string {
	return asString(rr.sr.row[column])
}

func asString(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case []byte:
		return string(value)
	case int:
		return strconv.Itoa(value)
	case int32:
		return strconv.FormatInt(int64(value), 10)
	case int64:
		return strconv.FormatInt(value, 10)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case time.Time:
		return value.Format(time.DateOnly)
	case fmt.Stringer:
		return value.String()
	default:
		return fmt.Sprint(value)
	}
}

// normalizeID returns the canonical form of an object identifier so that ids
// reported as "1", "01", 1 or 1.0 by different sources compare equal. Identifiers
// that are not integral numbers are returned trimmed but otherwise untouched.
func normalizeID(id string) string {
	id = strings.TrimSpace(id)

	if i, err := strconv.ParseInt(id, 10, 64); err == nil {
		return strconv.FormatInt(i, 10)
	}

	if f, err := strconv.ParseFloat(id, 64); err == nil {
		if f == math.Trunc(f) && math.Abs(f) < math.MaxInt64 && !strings.ContainsAny(id, "eE") {
			return strconv.FormatInt(int64(f), 10)
		}
	}

	return id
}

// splitTools turns the comma separated tool column into a list of tools
func splitTools(tools string) []string {
	result := []string{}

	for _, tool := range strings.Split(tools, ",") {
		tool = strings.TrimSpace(tool)
		if tool != "" {
			result = append(result, tool)
		}
	}

	return result
}
