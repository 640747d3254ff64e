package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"reelplan/internal/core"
	"reelplan/internal/intake"
	"reelplan/internal/plan"
	"reelplan/internal/storage"
	"reelplan/internal/vrd"
)

type createSessionRequest struct {
	Mode        string `json:"mode"`
	ProjectName string `json:"project_name"`
}

type createSessionResponse struct {
	SessionID string    `json:"session_id"`
	Mode      vrd.Mode  `json:"mode"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	mode := vrd.Mode(req.Mode)
	if req.Mode == "" {
		mode = vrd.ModeInteractive
	}
	if !mode.Valid() {
		writeError(w, http.StatusBadRequest, "mode must be hitl or yolo")
		return
	}

	orch := core.New(mode, core.WithLogger(s.logger), core.WithCatalog(s.catalog))
	sess := newSession(mode, req.ProjectName, orch)
	s.sessions.Add(sess)
	s.metrics.IncPipelineRuns(string(mode))
	s.metrics.SetActiveSessions(s.sessions.Len())

	s.logger.Info("session created", "session_id", sess.ID, "mode", mode)
	writeJSON(w, http.StatusCreated, createSessionResponse{
		SessionID: sess.ID,
		Mode:      mode,
		CreatedAt: sess.CreatedAt,
	})
}

func (s *Server) session(w http.ResponseWriter, r *http.Request) (*Session, bool) {
	sess, err := s.sessions.Get(chi.URLParam(r, "sessionID"))
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return nil, false
	}
	return sess, true
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, sess.Status())
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	s.sessions.Delete(sess.ID)
	s.metrics.SetActiveSessions(s.sessions.Len())
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSetVRD(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}

	var doc vrd.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sess.SetDocument(doc)
	result := sess.Do("vrd", func(o *core.Orchestrator) core.StageResult {
		return o.SetVRD(doc)
	})
	writeStageResult(w, result)
}

func (s *Server) handleClarifications(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}

	var answers vrd.Clarifications
	if err := json.NewDecoder(r.Body).Decode(&answers); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result := sess.Do("clarifications", func(o *core.Orchestrator) core.StageResult {
		return o.ProvideClarifications(answers)
	})
	if !result.IsError() {
		s.metrics.IncClarifications()
	}
	writeStageResult(w, result)
}

func (s *Server) handleGenerateScript(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}

	result := sess.Do("script", func(o *core.Orchestrator) core.StageResult {
		return o.GenerateScript()
	})
	if !result.IsError() {
		s.metrics.IncScripts()
	}
	writeStageResult(w, result)
}

func (s *Server) handleGenerateShots(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}

	result := sess.Do("shots", func(o *core.Orchestrator) core.StageResult {
		return o.GenerateShots()
	})
	writeStageResult(w, result)
}

type planRequest struct {
	QualityPriority string `json:"quality_priority"`
}

func (s *Server) handleGeneratePlan(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}

	constraints, err := decodeConstraints(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result := sess.Do("plan", func(o *core.Orchestrator) core.StageResult {
		return o.GeneratePlan(constraints)
	})
	if !result.IsError() {
		s.metrics.IncPlans()
		s.persistRun(r.Context(), sess)
	}
	writeStageResult(w, result)
}

type pipelineRequest struct {
	Mode            string       `json:"mode"`
	ProjectName     string       `json:"project_name"`
	VRD             vrd.Document `json:"vrd"`
	QualityPriority string       `json:"quality_priority"`
}

func (s *Server) handlePipeline(w http.ResponseWriter, r *http.Request) {
	var req pipelineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, sess, err := s.runPipeline(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if result.Status == core.StatusPipelineComplete {
		s.metrics.IncScripts()
		s.metrics.IncPlans()
		s.persistRun(r.Context(), sess)
	}
	writeStageResult(w, result)
}

// runPipeline creates a session, executes the full pipeline on it, and keeps
// the session registered so interactive callers can resume at a gate.
func (s *Server) runPipeline(req pipelineRequest) (core.StageResult, *Session, error) {
	mode := vrd.Mode(req.Mode)
	if req.Mode == "" {
		mode = vrd.ModeAuto
	}
	if !mode.Valid() {
		return core.StageResult{}, nil, errInvalidMode
	}

	constraints, err := parseConstraints(req.QualityPriority)
	if err != nil {
		return core.StageResult{}, nil, err
	}

	orch := core.New(mode, core.WithLogger(s.logger), core.WithCatalog(s.catalog))
	sess := newSession(mode, req.ProjectName, orch)
	sess.SetDocument(req.VRD)
	s.sessions.Add(sess)
	s.metrics.IncPipelineRuns(string(mode))

	result := sess.Do("pipeline", func(o *core.Orchestrator) core.StageResult {
		return o.ExecuteFullPipeline(req.VRD, constraints)
	})
	return result, sess, nil
}

type intakeRequest struct {
	Brief       string `json:"brief"`
	ProjectName string `json:"project_name"`
}

type intakeResponse struct {
	Analysis intake.Analysis `json:"analysis"`
	Document vrd.Document    `json:"document"`
	Scope    string          `json:"scope"`
}

func (s *Server) handleIntake(w http.ResponseWriter, r *http.Request) {
	var req intakeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Brief == "" {
		writeError(w, http.StatusBadRequest, "brief is required")
		return
	}

	analysis := intake.Analyze(req.Brief)
	writeJSON(w, http.StatusOK, intakeResponse{
		Analysis: analysis,
		Document: analysis.Document(req.ProjectName),
		Scope:    analysis.Scope(),
	})
}

// persistRun writes the session's artifacts under a run directory. Failures
// are logged, not surfaced; persistence is not part of the request contract.
func (s *Server) persistRun(ctx context.Context, sess *Session) {
	if s.runs == nil {
		return
	}

	runPath := storage.RunPath(sess.ID, sess.Project, sess.CreatedAt)
	_, script, shots, productionPlan := sess.Artifacts()

	artifacts := []struct {
		name string
		v    any
	}{
		{storage.ArtifactVRD, sess.Document()},
		{storage.ArtifactScript, script},
		{storage.ArtifactShots, shots},
		{storage.ArtifactPlan, productionPlan},
	}
	for _, a := range artifacts {
		if a.v == nil {
			continue
		}
		if err := s.runs.SaveArtifact(ctx, runPath, a.name, a.v); err != nil {
			s.logger.Warn("artifact persistence failed",
				"session_id", sess.ID, "artifact", a.name, "error", err)
		}
	}
}

func decodeConstraints(r *http.Request) (plan.Constraints, error) {
	var req planRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return plan.Constraints{}, errInvalidBody
		}
	}
	return parseConstraints(req.QualityPriority)
}

func parseConstraints(priority string) (plan.Constraints, error) {
	if priority == "" {
		return plan.Constraints{QualityPriority: plan.TierBalanced}, nil
	}
	tier := plan.Tier(priority)
	if !tier.Valid() {
		return plan.Constraints{}, errInvalidTier
	}
	return plan.Constraints{QualityPriority: tier}, nil
}

// writeStageResult maps a stage outcome to an HTTP status: precondition
// violations are conflicts, validation failures are unprocessable, and
// everything else is success.
func writeStageResult(w http.ResponseWriter, result core.StageResult) {
	switch {
	case core.IsPrecondition(result.Err):
		writeJSON(w, http.StatusConflict, result)
	case result.IsError():
		writeJSON(w, http.StatusUnprocessableEntity, result)
	default:
		writeJSON(w, http.StatusOK, result)
	}
}
