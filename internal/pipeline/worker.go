package pipeline

import (
	"context"
	"log/slog"

	"github.com/amprasad/studyplanner/internal/planner"
	"github.com/amprasad/studyplanner/internal/schedule"
)

// Worker processes a single schedule job through the pipeline stages,
// updating the job's status between stages.
type Worker struct {
	planner *planner.Planner
	log     *slog.Logger
}

func NewWorker(p *planner.Planner, log *slog.Logger) *Worker {
	return &Worker{planner: p, log: log}
}

// Process runs the full pipeline for a job.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "filename", job.Filename)

	start, err := schedule.ParseStartDate(job.StartDate)
	if err != nil {
		log.Error("invalid start date", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "validation")
		return
	}
	if job.TotalHours <= 0 {
		log.Error("invalid total hours", "total_hours", job.TotalHours)
		job.AddError("total hours must be positive")
		job.SetStatus(StatusFailed, "validation")
		return
	}

	job.SetStatus(StatusParsing, "parsing")
	doc, err := w.planner.Extract(job.Filename, job.FileData())
	if err != nil {
		log.Error("extraction failed", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "parsing")
		return
	}
	if ctx.Err() != nil {
		job.SetStatus(StatusFailed, "cancelled")
		return
	}

	job.SetStatus(StatusScoring, "scoring")
	_, scores := w.planner.ScoreTopics(doc, 0)
	if ctx.Err() != nil {
		job.SetStatus(StatusFailed, "cancelled")
		return
	}

	job.SetStatus(StatusScheduling, "scheduling")
	entries, err := w.planner.Allocate(doc, scores, job.TotalHours, start)
	if err != nil {
		log.Error("allocation failed", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "scheduling")
		return
	}

	job.SetResult(doc.HeadingTexts(), entries)

	job.SetStatus(StatusStoring, "storing")
	w.planner.StoreHeadings(ctx, job.Filename, doc)

	job.SetStatus(StatusCompleted, "done")
	log.Info("job complete", "headings", len(doc.Headings), "entries", len(entries))
}
