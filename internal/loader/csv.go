// Package loader reads the four dispatch tables from CSV exports or an
// SQLite database and adapts their schemas to the domain models.
package loader

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jengzang/dispatch-backend-go/internal/models"
)

// Default export file names
const (
	DefaultTripsFile    = "gotovie_dannie.csv"
	DefaultRoutesFile   = "route_summary.csv"
	DefaultDriversFile  = "driver_summary.csv"
	DefaultSegmentsFile = "top30_routes_with_segments.csv"
)

// Files names the four CSV exports
type Files struct {
	Trips    string `yaml:"trips"`
	Routes   string `yaml:"routes"`
	Drivers  string `yaml:"drivers"`
	Segments string `yaml:"segments"`
}

// DefaultFiles returns the standard export names
func DefaultFiles() Files {
	return Files{
		Trips:    DefaultTripsFile,
		Routes:   DefaultRoutesFile,
		Drivers:  DefaultDriversFile,
		Segments: DefaultSegmentsFile,
	}
}

// CSVSource reads the tables from a directory or, when BaseURL is set,
// over HTTP.
type CSVSource struct {
	Dir     string
	BaseURL string
	Files   Files
	Client  *http.Client
}

// NewDirSource reads the default files from dir
func NewDirSource(dir string) *CSVSource {
	return &CSVSource{Dir: dir, Files: DefaultFiles()}
}

// NewHTTPSource fetches the default files relative to baseURL
func NewHTTPSource(baseURL string, timeout time.Duration) *CSVSource {
	return &CSVSource{
		BaseURL: baseURL,
		Files:   DefaultFiles(),
		Client:  &http.Client{Timeout: timeout},
	}
}

// Trips reads the master trips table
func (s *CSVSource) Trips(ctx context.Context) ([]models.TripRecord, error) {
	return readTable(ctx, s, s.Files.Trips, tripFromRow)
}

// Routes reads the route summary table
func (s *CSVSource) Routes(ctx context.Context) ([]models.RouteSummary, error) {
	return readTable(ctx, s, s.Files.Routes, routeFromRow)
}

// Drivers reads the driver summary table
func (s *CSVSource) Drivers(ctx context.Context) ([]models.DriverSummary, error) {
	return readTable(ctx, s, s.Files.Drivers, driverFromRow)
}

// Segments reads the corridor table
func (s *CSVSource) Segments(ctx context.Context) ([]models.RouteSegment, error) {
	return readTable(ctx, s, s.Files.Segments, segmentFromRow)
}

func (s *CSVSource) open(ctx context.Context, name string) (io.ReadCloser, error) {
	if name == "" {
		return nil, errors.New("file name not configured")
	}
	if s.BaseURL == "" {
		return os.Open(filepath.Join(s.Dir, name))
	}

	u, err := url.JoinPath(s.BaseURL, name)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("GET %s: %s", u, resp.Status)
	}
	return resp.Body, nil
}

// readTable parses a header-based CSV file, skipping blank lines, and
// converts each record with convert.
func readTable[T any](ctx context.Context, s *CSVSource, name string, convert func(row) T) ([]T, error) {
	rc, err := s.open(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer rc.Close()

	r := csv.NewReader(rc)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s header: %w", name, err)
	}
	index := headerIndex(header)

	out := []T{}
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", name, err)
		}
		if blank(record) {
			continue
		}
		out = append(out, convert(row{index: index, record: record}))
	}
	return out, nil
}

func blank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// MergeFiles returns base with every non-empty name from override applied
func MergeFiles(base, override Files) Files {
	if override.Trips != "" {
		base.Trips = override.Trips
	}
	if override.Routes != "" {
		base.Routes = override.Routes
	}
	if override.Drivers != "" {
		base.Drivers = override.Drivers
	}
	if override.Segments != "" {
		base.Segments = override.Segments
	}
	return base
}
