package csvio

import (
	"encoding/csv"
	"fmt"
	"io"

	"tableman/table"
)

// Export serializes records to CSV: one row per record, only the given
// columns, in the given order. The header row carries column keys so the
// output re-imports against the same field names it was exported from.
func Export(w io.Writer, records []table.Record, columns []table.Column) error {
	writer := csv.NewWriter(w)

	header := make([]string, 0, len(columns))
	for _, column := range columns {
		header = append(header, column.Key)
	}
	err := writer.Write(header)
	if err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	row := make([]string, len(columns))
	for _, record := range records {
		for i, column := range columns {
			row[i] = table.Stringify(record[column.Key])
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
