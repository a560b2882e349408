package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"retailbrain-dashboard/pkg/logger"
	"retailbrain-dashboard/pkg/models"
	"retailbrain-dashboard/pkg/retail"
	"retailbrain-dashboard/pkg/viewstate"
)

// Validation failures surfaced to the user before any network call.
var (
	ErrFileRequired    = errors.New("no file selected")
	ErrUnsupportedFile = errors.New("unsupported file format")
	ErrNotEnoughRows   = errors.New("file needs a header row and at least one data row")
	ErrFileTooLarge    = errors.New("file exceeds the upload size limit")
)

// UploadService drives file submission. It inspects the file locally,
// converts spreadsheets to CSV (the backend ingests CSV only) and forwards
// the result; after any completed attempt it refreshes the product catalog so
// the forecast autocomplete reflects newly ingested data.
type UploadService struct {
	client   *retail.Client
	state    *viewstate.State
	forecast *ForecastService
	log      *logger.Logger
	maxBytes int64
}

// NewUploadService creates an upload controller. The forecast service is the
// cross-controller dependency that owns the product catalog refresh.
func NewUploadService(client *retail.Client, state *viewstate.State, forecast *ForecastService, log *logger.Logger, maxBytes int64) *UploadService {
	return &UploadService{client: client, state: state, forecast: forecast, log: log, maxBytes: maxBytes}
}

// Upload validates and submits one sales file. Local validation failures
// issue no network traffic at all; once the file passes inspection, the
// catalog refresh runs whether or not the upload itself succeeds.
func (s *UploadService) Upload(ctx context.Context, filename string, file io.Reader) (models.UploadView, error) {
	if file == nil || strings.TrimSpace(filename) == "" {
		return models.UploadView{}, ErrFileRequired
	}

	content, err := io.ReadAll(io.LimitReader(file, s.maxBytes+1))
	if err != nil {
		return models.UploadView{}, fmt.Errorf("read upload: %w", err)
	}
	if int64(len(content)) > s.maxBytes {
		return models.UploadView{}, ErrFileTooLarge
	}

	rows, csvContent, err := inspectSalesFile(filename, content)
	if err != nil {
		return models.UploadView{}, err
	}

	defer s.forecast.LoadProductOptions(ctx)

	resp, err := s.client.UploadSales(ctx, csvFilename(filename), csvContent)
	if err != nil {
		return models.UploadView{}, fmt.Errorf("upload file: %w", err)
	}

	// Message and rows are rendered exactly as received; a malformed
	// response shows up literally rather than being second-guessed here.
	view := models.UploadView{
		Message:      resp.Message,
		Rows:         resp.Rows,
		FileName:     filename,
		RowsDetected: int64(len(rows) - 1),
		Columns:      rows[0],
	}
	s.state.SetUpload(view)

	return view, nil
}

// inspectSalesFile parses the file into rows, accepting .csv directly and
// .xlsx via its first sheet. The returned bytes are always CSV.
func inspectSalesFile(filename string, content []byte) ([][]string, []byte, error) {
	lower := strings.ToLower(filename)

	switch {
	case strings.HasSuffix(lower, ".xlsx"):
		f, err := excelize.OpenReader(bytes.NewReader(content))
		if err != nil {
			return nil, nil, fmt.Errorf("open spreadsheet: %w", err)
		}
		defer f.Close()

		rows, err := f.GetRows(f.GetSheetName(0))
		if err != nil {
			return nil, nil, fmt.Errorf("read spreadsheet rows: %w", err)
		}
		if len(rows) < 2 {
			return nil, nil, ErrNotEnoughRows
		}

		var buf bytes.Buffer
		writer := csv.NewWriter(&buf)
		if err := writer.WriteAll(rows); err != nil {
			return nil, nil, fmt.Errorf("convert spreadsheet to csv: %w", err)
		}
		return rows, buf.Bytes(), nil

	case strings.HasSuffix(lower, ".csv"):
		reader := csv.NewReader(bytes.NewReader(content))
		reader.FieldsPerRecord = -1
		rows, err := reader.ReadAll()
		if err != nil {
			return nil, nil, fmt.Errorf("parse csv: %w", err)
		}
		if len(rows) < 2 {
			return nil, nil, ErrNotEnoughRows
		}
		return rows, content, nil

	default:
		return nil, nil, ErrUnsupportedFile
	}
}

func csvFilename(filename string) string {
	if strings.HasSuffix(strings.ToLower(filename), ".xlsx") {
		return filename[:len(filename)-len(".xlsx")] + ".csv"
	}
	return filename
}
