package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/sync/errgroup"

	"reelplan/internal/core"
)

type batchRequest struct {
	Jobs []pipelineRequest `json:"jobs"`
}

type batchJobResult struct {
	Index     int              `json:"index"`
	SessionID string           `json:"session_id,omitempty"`
	Error     string           `json:"error,omitempty"`
	Result    core.StageResult `json:"result"`
}

type batchResponse struct {
	Total     int              `json:"total"`
	Completed int              `json:"completed"`
	Results   []batchJobResult `json:"results"`
}

// handleBatch runs independent pipeline jobs concurrently, one orchestrator
// per job, bounded by the configured batch concurrency. Job order is
// preserved in the response.
func (s *Server) handleBatch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Jobs) == 0 {
		writeError(w, http.StatusBadRequest, "jobs is required")
		return
	}
	if len(req.Jobs) > s.cfg.Limits.MaxBatchSize {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("batch exceeds limit of %d jobs", s.cfg.Limits.MaxBatchSize))
		return
	}

	results := make([]batchJobResult, len(req.Jobs))

	g, _ := errgroup.WithContext(r.Context())
	g.SetLimit(s.cfg.Limits.BatchConcurrency)
	for i, job := range req.Jobs {
		i, job := i, job
		g.Go(func() error {
			result, sess, err := s.runPipeline(job)
			if err != nil {
				results[i] = batchJobResult{Index: i, Error: err.Error()}
				return nil
			}
			if result.Status == core.StatusPipelineComplete {
				s.metrics.IncScripts()
				s.metrics.IncPlans()
				s.persistRun(r.Context(), sess)
			}
			results[i] = batchJobResult{Index: i, SessionID: sess.ID, Result: result}
			return nil
		})
	}
	_ = g.Wait()

	completed := 0
	for _, res := range results {
		if res.Result.Status == core.StatusPipelineComplete {
			completed++
		}
	}

	s.logger.Info("batch pipeline finished", "jobs", len(req.Jobs), "completed", completed)
	writeJSON(w, http.StatusOK, batchResponse{
		Total:     len(req.Jobs),
		Completed: completed,
		Results:   results,
	})
}
