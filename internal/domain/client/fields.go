package client

import (
	"fmt"
	"strings"

	"github.com/BruksfildServices01/client-registry/internal/validators"
)

// Field is a column a caller may name in an update or a search. Only the
// constants below are ever embedded into SQL.
type Field string

const (
	FieldName       Field = "client_name"
	FieldSecondname Field = "client_secondname"
	FieldEmail      Field = "client_email"
	FieldPhone      Field = "phone"
)

var (
	updatable  = []Field{FieldName, FieldSecondname, FieldEmail}
	searchable = []Field{FieldName, FieldSecondname, FieldEmail, FieldPhone}

	// column constraints, mirrored from the schema
	rules = map[Field]string{
		FieldName:       "required,max=40",
		FieldSecondname: "required,max=60",
		FieldEmail:      "required,max=100",
		FieldPhone:      "max=15",
	}

	qualified = map[Field]string{
		FieldName:       "c.client_name",
		FieldSecondname: "c.client_secondname",
		FieldEmail:      "c.client_email",
		FieldPhone:      "p.phone",
	}

	validate = validators.New()
)

// Fields maps a field to an optional value. A nil value, like a missing key,
// means the field was not mentioned; a pointer to "" is an explicit empty
// value.
type Fields map[Field]*string

// Value returns a pointer to s, for building Fields literals.
func Value(s string) *string {
	return &s
}

// Column is the unqualified column name.
func (f Field) Column() string {
	return string(f)
}

// Qualified is the column as it appears in the client/phone join.
func (f Field) Qualified() string {
	return qualified[f]
}

func (f Field) Updatable() bool {
	return contains(updatable, f)
}

func (f Field) Searchable() bool {
	return contains(searchable, f)
}

// Update is one column assignment of UpdateClient.
type Update struct {
	Field Field
	Value string
}

// Filter is one case-insensitive substring condition of FindClients.
type Filter struct {
	Field Field
	Value string
}

// Pattern is the LIKE pattern for the filter, with LIKE wildcards in the
// value escaped by backslash.
func (f Filter) Pattern() string {
	return "%" + escapeLike(f.Value) + "%"
}

// Updates checks every key against the updatable allow-list and returns the
// present values in a fixed column order. Values must satisfy the column
// constraints.
func (fs Fields) Updates() ([]Update, error) {
	if err := fs.checkKeys(Field.Updatable); err != nil {
		return nil, err
	}

	var out []Update
	for _, f := range updatable {
		v := fs[f]
		if v == nil {
			continue
		}
		if err := validate.Var(f.Column(), *v, rules[f]); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrConstraintViolation, err)
		}
		out = append(out, Update{Field: f, Value: *v})
	}
	return out, nil
}

// Filters checks every key against the searchable allow-list and returns the
// present values in a fixed column order.
func (fs Fields) Filters() ([]Filter, error) {
	if err := fs.checkKeys(Field.Searchable); err != nil {
		return nil, err
	}

	var out []Filter
	for _, f := range searchable {
		if v := fs[f]; v != nil {
			out = append(out, Filter{Field: f, Value: *v})
		}
	}
	return out, nil
}

func (fs Fields) checkKeys(allowed func(Field) bool) error {
	for f := range fs {
		if !allowed(f) {
			return fmt.Errorf("%w: %q", ErrInvalidField, string(f))
		}
	}
	return nil
}

func contains(list []Field, f Field) bool {
	for _, x := range list {
		if x == f {
			return true
		}
	}
	return false
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
