package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// Artifact names written under each run directory.
const (
	ArtifactVRD    = "vrd.json"
	ArtifactScript = "script.json"
	ArtifactShots  = "shots.json"
	ArtifactPlan   = "plan.json"
)

// RunPath builds the directory for one pipeline run. The name carries the
// start time and a short session suffix so directories sort chronologically.
// Format: runs/2026-08-30_1512_launch-video_82f06b15
func RunPath(sessionID, projectName string, startedAt time.Time) string {
	shortID := sessionID
	if len(shortID) > 8 {
		shortID = shortID[:8]
	}

	name := sanitizeForDirname(projectName, 30)
	if name == "" {
		return filepath.Join("runs", fmt.Sprintf("%s_%s", startedAt.Format("2006-01-02_1504"), shortID))
	}
	return filepath.Join("runs", fmt.Sprintf("%s_%s_%s", startedAt.Format("2006-01-02_1504"), name, shortID))
}

// RunStore persists pipeline artifacts as JSON under per-run directories.
type RunStore struct {
	store Store
}

func NewRunStore(store Store) *RunStore {
	return &RunStore{store: store}
}

// SaveArtifact writes one artifact into a run directory.
func (rs *RunStore) SaveArtifact(ctx context.Context, runPath, artifact string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", artifact, err)
	}
	if err := rs.store.Save(ctx, filepath.Join(runPath, artifact), data); err != nil {
		return fmt.Errorf("saving %s: %w", artifact, err)
	}
	return nil
}

// LoadArtifact reads one artifact from a run directory into v.
func (rs *RunStore) LoadArtifact(ctx context.Context, runPath, artifact string, v any) error {
	data, err := rs.store.Load(ctx, filepath.Join(runPath, artifact))
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decoding %s: %w", artifact, err)
	}
	return nil
}

// ListRuns returns the run directories recorded so far, oldest first.
func (rs *RunStore) ListRuns(ctx context.Context) ([]string, error) {
	matches, err := rs.store.List(ctx, filepath.Join("runs", "*"))
	if err != nil {
		return nil, err
	}
	return matches, nil
}

// sanitizeForDirname reduces a free-text name to a safe directory component.
func sanitizeForDirname(s string, maxLen int) string {
	s = strings.ToLower(s)

	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '-', r == '_', r == '/', r == '.':
			b.WriteByte('-')
		}
	}
	s = b.String()

	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	s = strings.Trim(s, "-")

	if len(s) > maxLen {
		s = strings.TrimRight(s[:maxLen], "-")
	}

	return s
}
