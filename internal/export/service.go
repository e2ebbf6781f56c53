package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/VishnuKaku/workshipai/internal/geocode"
	"github.com/VishnuKaku/workshipai/internal/repository"
)

// Service is a tiny façade over the entry store and the geocoding service
// that produces XLSX bytes for exports.
type Service struct {
	entries repository.EntryRepository
	geo     *geocode.Service
	logger  *slog.Logger
}

func NewService(entries repository.EntryRepository, geo *geocode.Service, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{entries: entries, geo: geo, logger: logger}
}

// ExportEntriesXLSX returns an XLSX workbook (as bytes) with every saved
// passport entry, enriched with geocoded airport coordinates. Entries whose
// geocoding failed get the (0,0) sentinel.
func (s *Service) ExportEntriesXLSX(ctx context.Context) ([]byte, error) {
	start := time.Now()

	entries, err := s.entries.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Airport
	}
	coords := s.geo.BatchGeocode(ctx, names)

	f := excelize.NewFile()
	const sheet = "Passport Stamps"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Seq",
		"Country",
		"Airport",
		"Direction",
		"Date",
		"Description",
		"Confidence",
		"Latitude",
		"Longitude",
		"Stamp Image",
		"Manual",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for i, e := range entries {
		lat, lon := 0.0, 0.0
		if coords[i] != nil {
			lat, lon = coords[i].Latitude, coords[i].Longitude
		}

		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, e.Sequence)
		write(2, e.Country)
		write(3, e.Airport)
		write(4, string(e.Direction))
		write(5, e.Date)
		write(6, truncate(e.Description, 140))
		write(7, fmt.Sprintf("%.2f", e.Confidence))
		write(8, lat)
		write(9, lon)
		write(10, e.StampImage)
		if e.ManualEntry {
			write(11, "yes")
		}

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "B", "B", 22) // country
	_ = f.SetColWidth(sheet, "C", "C", 36) // airport
	_ = f.SetColWidth(sheet, "E", "E", 12) // date
	_ = f.SetColWidth(sheet, "F", "F", 48) // description
	_ = f.SetColWidth(sheet, "J", "J", 40) // image ref

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(entries),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
