package web

import (
	"log/slog"
	"net/http"
	"slices"

	"github.com/uvaheesara/archery-tools/internal/xquery"
	"github.com/uvaheesara/archery-tools/server/source"
)

var targetDays = []string{"day1", "day2", "day3"}

type TargetGroup struct {
	Event       string
	Assignments []source.TargetAssignment
}

type TargetsVars struct {
	Day    string
	Days   []string
	Groups []TargetGroup
	Error  string
}

// Targets shows the target allocation for one competition day, fetched live
// from the registration sheet rather than the stored snapshot.
func (h *handler) Targets(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	day := xquery.ParseString(r.URL.Query(), "day", targetDays[0])
	if !slices.Contains(targetDays, day) {
		http.Error(w, "Invalid day", http.StatusBadRequest)
		return
	}

	vars := TargetsVars{
		Day:  day,
		Days: targetDays,
	}

	assignments, err := h.Client.FetchTargetAssignments(ctx, day)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to fetch target assignments", slog.String("day", day), slog.Any("err", err))
		vars.Error = "Failed to fetch target assignments"
	} else {
		events := make([]string, 0, len(assignments))
		for event := range assignments {
			events = append(events, event)
		}
		slices.Sort(events)

		for _, event := range events {
			vars.Groups = append(vars.Groups, TargetGroup{
				Event:       event,
				Assignments: assignments[event],
			})
		}
	}

	if err = h.Templates().ExecuteTemplate(w, "targets.gohtml", vars); err != nil {
		slog.ErrorContext(ctx, "Failed to render targets template", slog.Any("err", err))
	}
}
