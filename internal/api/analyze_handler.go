package api

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/Holmfrior/Technopreneurship/pkg/errors"
	"github.com/Holmfrior/Technopreneurship/pkg/parse"
	"github.com/Holmfrior/Technopreneurship/pkg/pipeline"
	"github.com/Holmfrior/Technopreneurship/pkg/visual"
)

// analyzeRequest is the POST /api/analyze payload.
type analyzeRequest struct {
	Reference string   `json:"reference"`
	Compared  string   `json:"compared"`
	Formats   []string `json:"formats,omitempty"`
	Merged    bool     `json:"merged,omitempty"`
	Refresh   bool     `json:"refresh,omitempty"`
}

// sideResponse summarizes one side of the comparison.
type sideResponse struct {
	Depth int          `json:"depth"`
	Nodes int          `json:"nodes"`
	Graph visual.Graph `json:"graph"`
}

// analyzeResponse is the POST /api/analyze reply. Artifacts carry
// rendered outputs keyed by format; []byte values encode as base64.
type analyzeResponse struct {
	RunID     string            `json:"run_id"`
	Reference sideResponse      `json:"reference"`
	Compared  sideResponse      `json:"compared"`
	Score     int               `json:"score"`
	Delta     int               `json:"delta"`
	Artifacts map[string][]byte `json:"artifacts,omitempty"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest,
			errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request body"))
		return
	}

	// JSON graphs are always part of the response, so only render
	// formats the client asked for explicitly.
	opts := pipeline.Options{
		RefText:  req.Reference,
		CompText: req.Compared,
		Formats:  req.Formats,
		Merged:   req.Merged,
		Refresh:  req.Refresh,
	}
	if len(opts.Formats) == 0 {
		opts.Formats = []string{pipeline.FormatJSON}
	}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, statusForError(err), err)
		return
	}

	writeJSON(w, http.StatusOK, analyzeResponse{
		RunID: result.RunID,
		Reference: sideResponse{
			Depth: result.Ref.Depth,
			Nodes: result.Ref.Nodes,
			Graph: result.Ref.Graph,
		},
		Compared: sideResponse{
			Depth: result.Comp.Depth,
			Nodes: result.Comp.Nodes,
			Graph: result.Comp.Graph,
		},
		Score:     result.Score,
		Delta:     result.Delta,
		Artifacts: result.Artifacts,
	})
}

// statusForError maps pipeline error codes onto HTTP statuses.
func statusForError(err error) int {
	switch {
	case stderrors.Is(err, parse.ErrNotFound):
		return http.StatusBadGateway
	case stderrors.Is(err, parse.ErrNetwork):
		return http.StatusBadGateway
	}
	switch errors.GetCode(err) {
	case errors.ErrCodeEmptyText, errors.ErrCodeInvalidInput, errors.ErrCodeInvalidFormat:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound:
		return http.StatusNotFound
	case errors.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	case errors.ErrCodeNetwork, errors.ErrCodeParseFailed:
		return http.StatusBadGateway
	case errors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
