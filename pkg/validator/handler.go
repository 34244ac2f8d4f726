package validator

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/guardrail-dev/guardrail/pkg/conftree"
	gerrors "github.com/guardrail-dev/guardrail/pkg/errors"
	"github.com/guardrail-dev/guardrail/pkg/ruleset"
	"github.com/guardrail-dev/guardrail/pkg/serializer"
	"github.com/guardrail-dev/guardrail/pkg/server"
)

const (
	// DefaultValidateTimeout bounds a single API validation request.
	DefaultValidateTimeout = 30 * time.Second

	// maxRequestBody caps request size at 4 MiB; configuration documents
	// larger than that should use the CLI.
	maxRequestBody = 4 << 20
)

// validateRequest is the wire shape of a validation request. The body may be
// JSON or YAML; both decode through the yaml node API so map order in the
// config document is preserved.
type validateRequest struct {
	Config yaml.Node `yaml:"config" json:"config"`
	Rules  yaml.Node `yaml:"rules" json:"rules"`
}

// HandleValidate processes validation requests.
// It accepts a POST with a JSON or YAML body carrying the configuration
// document and the rule list, and responds with the full validation report.
//
// Example:
//
//	POST /v1/validate
//	Content-Type: application/json
//	Body: {
//	  "config": {"port": 99999},
//	  "rules": [{"path": "port", "type": "number", "min": 1, "max": 65535}]
//	}
func (v *Validator) HandleValidate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		server.WriteError(w, r, http.StatusMethodNotAllowed, gerrors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]interface{}{
				"method": r.Method,
			})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), DefaultValidateTimeout)
	defer cancel()

	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBody))
	if err != nil {
		server.WriteError(w, r, http.StatusBadRequest, gerrors.ErrCodeInvalidRequest,
			"Failed to read request body", false, nil)
		return
	}

	var req validateRequest
	if err := yaml.Unmarshal(body, &req); err != nil {
		server.WriteError(w, r, http.StatusBadRequest, gerrors.ErrCodeInvalidRequest,
			"Invalid request body", false, map[string]interface{}{
				"error": err.Error(),
			})
		return
	}
	if req.Config.Kind == 0 || req.Rules.Kind == 0 {
		server.WriteError(w, r, http.StatusBadRequest, gerrors.ErrCodeInvalidRequest,
			"Request must carry both config and rules", false, nil)
		return
	}

	tree, err := conftree.FromNode(&req.Config)
	if err != nil {
		server.WriteError(w, r, http.StatusBadRequest, gerrors.ErrCodeInvalidRequest,
			"Invalid config document", false, map[string]interface{}{
				"error": err.Error(),
			})
		return
	}

	set, err := ruleset.FromNode(&req.Rules)
	if err != nil {
		server.WriteError(w, r, http.StatusBadRequest, gerrors.ErrCodeInvalidRequest,
			"Invalid rules", false, map[string]interface{}{
				"error": err.Error(),
			})
		return
	}

	slog.Debug("validate request received", "rules", set.Len())

	report, err := v.Validate(ctx, tree, set)
	if err != nil {
		server.WriteError(w, r, http.StatusInternalServerError, gerrors.ErrCodeInternal,
			"Validation failed", true, map[string]interface{}{
				"error": err.Error(),
			})
		return
	}

	serializer.RespondJSON(w, http.StatusOK, report)
}
