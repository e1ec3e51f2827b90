package web

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/uvaheesara/archery-tools/internal/tsync"
	"github.com/uvaheesara/archery-tools/server/entries"
)

const (
	FileEntries    = "entries"
	FileClubs      = "clubs"
	FileStatistics = "statistics"
)

var defaultFiles = []string{FileEntries, FileClubs}

type ExportVars struct {
	Files []string
	Error string
}

func (h *handler) Export(w http.ResponseWriter, r *http.Request) {
	h.renderExport(w, r, "")
}

func (h *handler) renderExport(w http.ResponseWriter, r *http.Request, errorMessage string) {
	ctx := r.Context()

	if err := h.Templates().ExecuteTemplate(w, "export.gohtml", ExportVars{
		Files: defaultFiles,
		Error: errorMessage,
	}); err != nil {
		slog.ErrorContext(ctx, "Failed to render export template", slog.Any("err", err))
	}
}

// DoExport writes the selected reports as CSV. A single selection downloads as
// a plain CSV file, multiple selections as a zip archive. The report files are
// built concurrently and assembled in selection order.
func (h *handler) DoExport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		slog.ErrorContext(ctx, "Failed to parse form", slog.Any("err", err))
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	files := r.Form["files"]
	if len(files) == 0 {
		h.renderExport(w, r, "Select at least one file to export")
		return
	}

	classified, err := h.loadEntries(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to load entries", slog.Any("err", err))
		http.Error(w, "Failed to load entries", http.StatusInternalServerError)
		return
	}

	buffers := make([]bytes.Buffer, len(files))
	eg, _ := tsync.ErrorGroupWithContext(ctx)
	for i, file := range files {
		eg.Go(func() error {
			switch file {
			case FileEntries:
				return writeEntriesCSV(&buffers[i], classified)
			case FileClubs:
				return writeClubsCSV(&buffers[i], entries.Aggregate(classified, h.Cfg.Fees))
			case FileStatistics:
				participants, err := h.Server.Participants(ctx)
				if err != nil {
					return err
				}
				return writeStatisticsCSV(&buffers[i], entries.CalculateStatistics(participants, time.Now()))
			default:
				return fmt.Errorf("unknown export file: %q", file)
			}
		})
	}
	if err = eg.Wait(); err != nil {
		slog.ErrorContext(ctx, "Failed to build export", slog.Any("err", err))
		h.renderExport(w, r, "Failed to build export: "+err.Error())
		return
	}

	if len(files) == 1 {
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", files[0]+".csv"))
		if _, err = buffers[0].WriteTo(w); err != nil {
			slog.ErrorContext(ctx, "Failed to write export", slog.Any("err", err))
		}
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", `attachment; filename="export.zip"`)

	zw := zip.NewWriter(w)
	for i, file := range files {
		f, err := zw.Create(file + ".csv")
		if err != nil {
			slog.ErrorContext(ctx, "Failed to create zip entry", slog.Any("err", err))
			return
		}
		if _, err = buffers[i].WriteTo(f); err != nil {
			slog.ErrorContext(ctx, "Failed to write zip entry", slog.Any("err", err))
			return
		}
	}
	if err = zw.Close(); err != nil {
		slog.ErrorContext(ctx, "Failed to close zip", slog.Any("err", err))
	}
}

func writeEntriesCSV(buf *bytes.Buffer, classified []entries.ClassifiedEntry) error {
	cw := csv.NewWriter(buf)

	if err := cw.Write([]string{"name", "club", "event", "extra_event", "date_of_birth", "valid", "violations", "fee"}); err != nil {
		return err
	}

	for _, entry := range classified {
		record := []string{
			entry.Name,
			entry.Club,
			entry.PrimaryEvent,
			entry.ExtraEvent,
			entry.DateOfBirth,
			strconv.FormatBool(entry.IsValid),
			strings.Join(entry.Violations, "; "),
			strconv.Itoa(entry.Fee),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func writeClubsCSV(buf *bytes.Buffer, summary entries.TournamentSummary) error {
	cw := csv.NewWriter(buf)

	if err := cw.Write([]string{"club", "participants", "single_event", "double_event", "invalid", "single_event_fees", "extra_event_fees", "total_fees"}); err != nil {
		return err
	}

	for _, club := range summary.Clubs {
		record := []string{
			club.ClubName,
			strconv.Itoa(club.Participants),
			strconv.Itoa(club.SingleEventParticipants),
			strconv.Itoa(club.DoubleEventParticipants),
			strconv.Itoa(club.InvalidEntries),
			strconv.Itoa(club.SingleEventFees),
			strconv.Itoa(club.ExtraEventFees),
			strconv.Itoa(club.TotalFees),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func writeStatisticsCSV(buf *bytes.Buffer, stats entries.Statistics) error {
	cw := csv.NewWriter(buf)

	if err := cw.Write([]string{"section", "name", "count"}); err != nil {
		return err
	}

	rows := [][]string{
		{"total", "participants", strconv.Itoa(stats.TotalParticipants)},
		{"gender", "male", strconv.Itoa(stats.MaleParticipants)},
		{"gender", "female", strconv.Itoa(stats.FemaleParticipants)},
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	for _, section := range []struct {
		name   string
		counts map[string]int
	}{
		{"event", stats.EventBreakdown},
		{"club", stats.ClubBreakdown},
		{"age_category", stats.AgeCategoryBreakdown},
	} {
		for _, name := range sortedKeys(section.counts) {
			if err := cw.Write([]string{section.name, name, strconv.Itoa(section.counts[name])}); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}
