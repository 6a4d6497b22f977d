package graphql

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/heartmarshall/catgateway/internal/domain"
)

// dateLayout is accepted on input in addition to RFC3339.
const dateLayout = "2006-01-02"

// DateTime maps the DateTime scalar. It is rendered as RFC3339 in UTC and
// accepts RFC3339 timestamps or plain dates on input.
type DateTime struct {
	time.Time
}

// NewDateTime wraps t.
func NewDateTime(t time.Time) DateTime {
	return DateTime{Time: t}
}

// ImplementsGraphQLType binds DateTime to the schema scalar of the same name.
func (DateTime) ImplementsGraphQLType(name string) bool {
	return name == "DateTime"
}

// UnmarshalGraphQL parses an input value. A malformed value is reported as a
// validation error so it reaches the client with the VALIDATION code.
func (d *DateTime) UnmarshalGraphQL(input any) error {
	t, err := parseDateTime(input)
	if err != nil {
		return domain.NewValidationError("DateTime", err.Error())
	}
	d.Time = t
	return nil
}

// MarshalJSON renders the value as an RFC3339 string in UTC.
func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.UTC().Format(time.RFC3339))
}

func parseDateTime(v any) (time.Time, error) {
	s, ok := v.(string)
	if !ok {
		return time.Time{}, fmt.Errorf("must be a string in RFC3339 format")
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("must be a string in RFC3339 format")
	}
	return t, nil
}
