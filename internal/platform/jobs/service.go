package jobs

import (
	"context"
	"encoding/json"
	"log/slog"
)

const JobRankingSnapshot = "ranking_snapshot"

// RunRecorder persists one row per job run.
type RunRecorder interface {
	StartRun(ctx context.Context, scope, jobType string) (string, error)
	FinishRun(ctx context.Context, runID, status string, details []byte) error
}

type Service struct {
	Runs RunRecorder
}

func New(runs RunRecorder) *Service {
	return &Service{Runs: runs}
}

// RunNow executes run synchronously and records its outcome. Ledger
// failures are logged and never change the job's own result.
func (s *Service) RunNow(ctx context.Context, jobType, scope string, run func(context.Context) (any, error)) (any, error) {
	runID := ""
	if s.Runs != nil {
		id, err := s.Runs.StartRun(ctx, scope, jobType)
		if err != nil {
			slog.Warn("job run insert failed", "jobType", jobType, "scope", scope, "err", err)
		}
		runID = id
	}

	details, err := run(ctx)
	status := "completed"
	if err != nil {
		status = "failed"
		details = map[string]any{"result": details, "error": err.Error()}
	}
	detailsJSON, marshalErr := json.Marshal(details)
	if marshalErr != nil {
		slog.Warn("job details marshal failed", "err", marshalErr)
		detailsJSON = []byte("{}")
	}
	if runID != "" {
		if updErr := s.Runs.FinishRun(ctx, runID, status, detailsJSON); updErr != nil {
			slog.Warn("job run update failed", "jobType", jobType, "runId", runID, "err", updErr)
		}
	}
	if err != nil {
		return nil, err
	}
	return details, nil
}
