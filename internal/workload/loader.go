package workload

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"cpu-scheduler/internal/requests"

	yaml "github.com/goccy/go-yaml"
)

var ErrUnsupportedFormat = errors.New("unsupported workload format")

// Load reads a workload file. The format follows the extension: .yml/.yaml, .csv or .json.
func Load(path string) (requests.ScheduleRequests, error) {
	f, err := os.Open(path)
	if err != nil {
		return requests.ScheduleRequests{}, fmt.Errorf("opening workload file: %w", err)
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yml", ".yaml":
		return ReadYAML(f)
	case ".csv":
		return ReadCSV(f)
	case ".json":
		return ReadJSON(f)
	default:
		return requests.ScheduleRequests{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

func ReadYAML(r io.Reader) (requests.ScheduleRequests, error) {
	var request requests.ScheduleRequests
	data, err := io.ReadAll(r)
	if err != nil {
		return request, err
	}
	if err := yaml.Unmarshal(data, &request); err != nil {
		return request, fmt.Errorf("reading YAML: %w", err)
	}
	return request, nil
}

func ReadJSON(r io.Reader) (requests.ScheduleRequests, error) {
	var request requests.ScheduleRequests
	if err := json.NewDecoder(r).Decode(&request); err != nil {
		return request, fmt.Errorf("reading JSON: %w", err)
	}
	return request, nil
}

// ReadCSV reads rows of id,arrival,burst. A first row where neither the arrival nor the burst
// column is a number is treated as a header. Empty arrival or burst cells become missing fields.
func ReadCSV(r io.Reader) (requests.ScheduleRequests, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 3
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return requests.ScheduleRequests{}, fmt.Errorf("reading CSV: %w", err)
	}
	if len(rows) > 0 && isHeader(rows[0]) {
		rows = rows[1:]
	}

	jobs := make([]requests.Job, 0, len(rows))
	for i, row := range rows {
		arrival, err := optionalInt(row[1])
		if err != nil {
			return requests.ScheduleRequests{}, fmt.Errorf("row %d: arrival: %w", i+1, err)
		}
		burst, err := optionalInt(row[2])
		if err != nil {
			return requests.ScheduleRequests{}, fmt.Errorf("row %d: burst: %w", i+1, err)
		}
		jobs = append(jobs, requests.Job{
			ProcessId:   strings.TrimSpace(row[0]),
			ArrivalTime: arrival,
			BurstTime:   burst,
		})
	}
	return requests.ScheduleRequests{Jobs: jobs}, nil
}

func isHeader(row []string) bool {
	return isLabel(row[1]) && isLabel(row[2])
}

func isLabel(cell string) bool {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return false
	}
	_, err := strconv.Atoi(cell)
	return err != nil
}

func optionalInt(cell string) (*int, error) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(cell)
	if err != nil {
		return nil, err
	}
	return &value, nil
}
