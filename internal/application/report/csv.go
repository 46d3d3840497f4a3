package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/trackops/assettrack-api/internal/domain/entity"
)

const csvTimeLayout = "2006-01-02 15:04"

// movementsCSV renders the movement rows as CSV with a header row.
func movementsCSV(rows []*entity.Movement) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"Asset", "Serial Number", "From", "To", "Type",
		"Dispatched By", "Received By", "Date", "Returnable",
		"Expected Return", "Returned At", "Condition", "Description",
	}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("report: write csv header: %w", err)
	}
	for _, mv := range rows {
		rec := []string{
			mv.AssetName,
			mv.SerialNumber,
			mv.MovementFrom,
			mv.MovementTo,
			mv.MovementType,
			mv.DispatchedBy,
			mv.ReceivedBy,
			mv.Date.Format(csvTimeLayout),
			strconv.FormatBool(mv.Returnable),
			formatTimePtr(mv.ExpectedReturnDate),
			formatTimePtr(mv.ReturnedDateTime),
			mv.AssetCondition,
			mv.Description,
		}
		if err := w.Write(rec); err != nil {
			return nil, fmt.Errorf("report: write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("report: flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// maintenanceCSV renders the maintenance rows as CSV with a header row.
func maintenanceCSV(rows []*entity.Maintenance) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"Asset", "Type", "Scheduled Date", "Status",
		"Performed By", "Cost", "Description",
	}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("report: write csv header: %w", err)
	}
	for _, m := range rows {
		rec := []string{
			m.AssetName,
			m.MaintenanceType,
			m.ScheduledDate.Format(csvTimeLayout),
			m.Status,
			m.PerformedBy,
			m.Cost.StringFixed(2),
			m.Description,
		}
		if err := w.Write(rec); err != nil {
			return nil, fmt.Errorf("report: write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("report: flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(csvTimeLayout)
}
