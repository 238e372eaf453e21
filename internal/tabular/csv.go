package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// ErrCSV indicates unreadable CSV input.
var ErrCSV = errors.New("invalid CSV")

// ReadCSV reads all records from r. With header set, the first record is
// returned separately. Records may have different lengths.
func ReadCSV(r io.Reader, header bool) (headers []string, rows [][]string, err error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrCSV, err)
	}
	if header && len(records) > 0 {
		return records[0], records[1:], nil
	}
	return nil, records, nil
}
