package sink

import (
	"encoding/csv"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"
)

// writeCSV encodes rows as CSV using the `csv` struct tags for the header,
// one record per row. Fields tagged "-" are skipped.
func writeCSV[T any](w io.Writer, rows []T) error {
	t := reflect.TypeFor[T]()
	if t.Kind() != reflect.Struct {
		return fmt.Errorf("csv: %s is not a struct", t)
	}

	var header []string
	var fields []int
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag := f.Tag.Get("csv")
		if tag == "-" {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")
		if name == "" {
			name = f.Name
		}
		header = append(header, name)
		fields = append(fields, i)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("csv header: %w", err)
	}
	record := make([]string, len(fields))
	for _, row := range rows {
		v := reflect.ValueOf(row)
		for j, i := range fields {
			record[j] = formatField(v.Field(i))
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("csv record: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatField(v reflect.Value) string {
	switch v.Kind() {
	case reflect.String:
		return v.String()
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64)
	default:
		return fmt.Sprint(v.Interface())
	}
}
