package export

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	_ "modernc.org/sqlite"

	"github.com/VishnuKaku/workshipai/constants"
	"github.com/VishnuKaku/workshipai/internal/common"
	"github.com/VishnuKaku/workshipai/internal/entity"
	"github.com/VishnuKaku/workshipai/internal/geocode"
	"github.com/VishnuKaku/workshipai/internal/repository"
)

func TestExportEntriesXLSX(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("q") == "SPLIT AIRPORT" {
			fmt.Fprint(w, `[{"lat":"43.5389","lon":"16.2981"}]`)
			return
		}
		fmt.Fprint(w, "[]")
	}))
	defer srv.Close()

	db, err := sql.Open("sqlite", "file:"+t.TempDir()+"/export.db")
	require.NoError(t, err)
	defer db.Close()
	repo, err := repository.NewEntryRepository(db, nil)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, repo.Save(ctx, &entity.PassportEntry{
		Sequence: 1, Country: "Croatia", Airport: "SPLIT AIRPORT",
		Direction: constants.DirectionArrival, Date: "15/03/2022", Confidence: 0.9,
	}))
	require.NoError(t, repo.Save(ctx, &entity.PassportEntry{
		Sequence: 2, Country: "Croatia", Airport: "NOWHERE AIRPORT",
		Direction: constants.DirectionDeparture, Confidence: 0.5,
	}))

	client := geocode.NewClient(common.GeocoderConfig{
		BaseURL: srv.URL, Timeout: 5 * time.Second,
		MaxAttempts: 3, InitialBackoff: 10 * time.Millisecond,
	}, nil)
	svc := geocode.NewService(client, nil, nil, geocode.WithBatchDelay(time.Millisecond))

	data, err := NewService(repo, svc, nil).ExportEntriesXLSX(ctx)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	const sheet = "Passport Stamps"
	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	require.Len(t, rows, 3, "header plus two entries")

	assert.Equal(t, "Country", rows[0][1])

	lat, err := f.GetCellValue(sheet, "H2")
	require.NoError(t, err)
	assert.Contains(t, lat, "43.5389")

	// Failed geocode gets the (0,0) sentinel.
	lat2, err := f.GetCellValue(sheet, "H3")
	require.NoError(t, err)
	assert.Equal(t, "0", lat2)
}
