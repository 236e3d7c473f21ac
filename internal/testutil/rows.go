package testutil

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Rows is an in-memory pgx.Rows.
type Rows struct {
	columns []string
	values  [][]any
	pos     int
	closed  bool
	err     error
	// FailAfter makes Next fail with Err once this many rows have been read; negative disables.
	FailAfter int
	FailErr   error
}

var _ pgx.Rows = (*Rows)(nil)

// NewRows builds rows with the given column names and row values.
func NewRows(columns []string, values ...[]any) *Rows {
	return &Rows{columns: columns, values: values, pos: -1, FailAfter: -1}
}

// RowsFromStructs builds rows whose columns are the db tags of T and whose values are
// the corresponding fields of items.
func RowsFromStructs[T any](items ...T) *Rows {
	var zero T
	typ := reflect.TypeOf(zero)

	var columns []string
	var index []int
	for i := 0; i < typ.NumField(); i++ {
		tag := strings.SplitN(typ.Field(i).Tag.Get("db"), ",", 2)[0]
		if tag == "" || tag == "-" {
			continue
		}
		columns = append(columns, tag)
		index = append(index, i)
	}

	values := make([][]any, 0, len(items))
	for _, item := range items {
		v := reflect.ValueOf(item)
		row := make([]any, len(index))
		for j, i := range index {
			row[j] = v.Field(i).Interface()
		}
		values = append(values, row)
	}
	return NewRows(columns, values...)
}

// Scalar builds a single row with a single column.
func Scalar(column string, v any) *Rows {
	return NewRows([]string{column}, []any{v})
}

func (r *Rows) Close() {
	r.closed = true
}

func (r *Rows) Err() error {
	return r.err
}

func (r *Rows) CommandTag() pgconn.CommandTag {
	return pgconn.NewCommandTag(fmt.Sprintf("SELECT %d", len(r.values)))
}

func (r *Rows) FieldDescriptions() []pgconn.FieldDescription {
	fds := make([]pgconn.FieldDescription, len(r.columns))
	for i, name := range r.columns {
		fds[i] = pgconn.FieldDescription{Name: name}
	}
	return fds
}

func (r *Rows) Next() bool {
	if r.closed || r.err != nil {
		return false
	}
	if r.FailAfter >= 0 && r.pos+1 >= r.FailAfter {
		r.err = r.FailErr
		if r.err == nil {
			r.err = fmt.Errorf("testutil: row iteration failed")
		}
		r.closed = true
		return false
	}
	r.pos++
	if r.pos >= len(r.values) {
		r.closed = true
		return false
	}
	return true
}

func (r *Rows) Scan(dest ...any) error {
	row := r.values[r.pos]
	if len(dest) != len(row) {
		return fmt.Errorf("testutil: %d destinations for %d columns", len(dest), len(row))
	}
	for i, d := range dest {
		if d == nil {
			continue
		}
		if err := assign(d, row[i]); err != nil {
			return fmt.Errorf("testutil: column %q: %w", r.columns[i], err)
		}
	}
	return nil
}

func (r *Rows) Values() ([]any, error) {
	return r.values[r.pos], nil
}

func (r *Rows) RawValues() [][]byte {
	raw := make([][]byte, len(r.values[r.pos]))
	for i, v := range r.values[r.pos] {
		if v != nil {
			raw[i] = []byte(fmt.Sprint(v))
		}
	}
	return raw
}

func (r *Rows) Conn() *pgx.Conn {
	return nil
}

// assign stores src into the pointer dst, allocating through one level of pointer
// for nullable destinations.
func assign(dst, src any) error {
	dv := reflect.ValueOf(dst)
	if dv.Kind() != reflect.Pointer || dv.IsNil() {
		return fmt.Errorf("destination %T is not a pointer", dst)
	}
	target := dv.Elem()

	if src == nil {
		target.Set(reflect.Zero(target.Type()))
		return nil
	}

	sv := reflect.ValueOf(src)
	if sv.Kind() == reflect.Pointer {
		if sv.IsNil() {
			target.Set(reflect.Zero(target.Type()))
			return nil
		}
		if sv.Type().AssignableTo(target.Type()) {
			target.Set(sv)
			return nil
		}
		sv = sv.Elem()
	}

	if target.Kind() == reflect.Pointer {
		p := reflect.New(target.Type().Elem())
		if !sv.Type().ConvertibleTo(p.Elem().Type()) {
			return fmt.Errorf("cannot convert %s to %s", sv.Type(), p.Elem().Type())
		}
		p.Elem().Set(sv.Convert(p.Elem().Type()))
		target.Set(p)
		return nil
	}

	if !sv.Type().ConvertibleTo(target.Type()) {
		return fmt.Errorf("cannot convert %s to %s", sv.Type(), target.Type())
	}
	target.Set(sv.Convert(target.Type()))
	return nil
}
