// Package export writes leads as CSV and reads such files back.
package export

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/altinukshini/leadfinder/internal/model"
)

// ErrNothingToExport is returned for an empty lead list.
var ErrNothingToExport = errors.New("no data to export")

// Columns returns the header: the canonical columns, then every raw key
// that is not a canonical column, in first-seen order. Keys of one record
// are visited in sorted order.
func Columns(leads []model.Lead) []string {
	cols := append([]string(nil), model.LeadColumns...)
	seen := make(map[string]bool, len(cols))
	for _, c := range cols {
		seen[c] = true
	}
	for _, l := range leads {
		keys := make([]string, 0, len(l.Raw))
		for k := range l.Raw {
			if !seen[k] {
				keys = append(keys, k)
			}
		}
		sort.Strings(keys)
		for _, k := range keys {
			seen[k] = true
			cols = append(cols, k)
		}
	}
	return cols
}

// WriteCSV writes leads with every field quoted and embedded quotes
// doubled. Non-scalar raw values are JSON encoded.
func WriteCSV(w io.Writer, leads []model.Lead) error {
	cols := Columns(leads)
	bw := bufio.NewWriter(w)

	if err := writeRow(bw, cols); err != nil {
		return err
	}
	row := make([]string, len(cols))
	for _, l := range leads {
		canonical := l.Fields()
		copy(row, canonical)
		for i := len(canonical); i < len(cols); i++ {
			v, err := cell(l.Raw[cols[i]])
			if err != nil {
				return fmt.Errorf("column %s: %w", cols[i], err)
			}
			row[i] = v
		}
		if err := writeRow(bw, row); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func writeRow(w *bufio.Writer, fields []string) error {
	for i, f := range fields {
		if i > 0 {
			if err := w.WriteByte(','); err != nil {
				return err
			}
		}
		if _, err := w.WriteString(quote(f)); err != nil {
			return err
		}
	}
	return w.WriteByte('\n')
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func cell(v any) (string, error) {
	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		return t, nil
	case json.Number:
		return t.String(), nil
	case bool:
		return strconv.FormatBool(t), nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	case int:
		return strconv.Itoa(t), nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}

// ReadCSV parses a file written by WriteCSV. Extra columns land in Raw as
// strings.
func ReadCSV(r io.Reader) ([]model.Lead, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	var leads []model.Lead
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(leads)+1, err)
		}
		leads = append(leads, leadFromRow(header, rec))
	}
	return leads, nil
}

func leadFromRow(header, rec []string) model.Lead {
	var l model.Lead
	for i, col := range header {
		if i >= len(rec) {
			break
		}
		v := rec[i]
		switch col {
		case "name":
			l.Name = v
		case "email":
			l.Email = v
		case "title":
			l.Title = v
		case "company":
			l.Company = v
		case "location":
			l.Location = v
		case "linkedin":
			l.LinkedIn = v
		case "phone":
			l.Phone = v
		default:
			if v == "" {
				continue
			}
			if l.Raw == nil {
				l.Raw = model.ExternalRecord{}
			}
			l.Raw[col] = v
		}
	}
	return l
}

// FileName is the default export name for the given day.
func FileName(t time.Time) string {
	return "leads_" + t.UTC().Format("2006-01-02") + ".csv"
}

// RecordFileName names the export of one saved run.
func RecordFileName(rec model.RunRecord) string {
	return fmt.Sprintf("leads_%s_%s.csv", rec.Timestamp.UTC().Format("2006-01-02"), rec.ID)
}

// WriteFile exports leads to dir/name and returns the path written.
func WriteFile(dir, name string, leads []model.Lead) (string, error) {
	if len(leads) == 0 {
		return "", ErrNothingToExport
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create export: %w", err)
	}
	if err := WriteCSV(f, leads); err != nil {
		f.Close()
		return "", fmt.Errorf("write export: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close export: %w", err)
	}
	return path, nil
}
