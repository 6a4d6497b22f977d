package graphql

import (
	"encoding/json"
	"log/slog"
	"net/http"

	gqlerrors "github.com/graph-gophers/graphql-go/errors"
)

const maxBodyBytes = 1 << 20

// Handler serves POST /graphql and, for queries only, GET /graphql.
type Handler struct {
	exec *Executor
	log  *slog.Logger
}

// NewHandler creates a Handler.
func NewHandler(exec *Executor, logger *slog.Logger) *Handler {
	return &Handler{exec: exec, log: logger.With("handler", "graphql")}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req Request

	switch r.Method {
	case http.MethodPost:
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.log.DebugContext(r.Context(), "invalid graphql body", slog.String("error", err.Error()))
			writeBadRequest(w, http.StatusBadRequest, "invalid request body")
			return
		}

	case http.MethodGet:
		q := r.URL.Query()
		req.Query = q.Get("query")
		req.OperationName = q.Get("operationName")
		if raw := q.Get("variables"); raw != "" {
			if err := json.Unmarshal([]byte(raw), &req.Variables); err != nil {
				writeBadRequest(w, http.StatusBadRequest, "invalid variables")
				return
			}
		}

		// Mutations must not be reachable through GET.
		if opType := OperationType(req); opType != "" && opType != "query" {
			w.Header().Set("Allow", http.MethodPost)
			writeBadRequest(w, http.StatusMethodNotAllowed, "only queries are allowed over GET")
			return
		}

	default:
		w.Header().Set("Allow", "GET, POST")
		writeBadRequest(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if req.Query == "" {
		writeBadRequest(w, http.StatusBadRequest, "query is required")
		return
	}

	resp := h.exec.Execute(r.Context(), req)

	status := http.StatusOK
	if resp.Invalid() {
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, resp)
}

func writeBadRequest(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, &Response{
		Errors: []*gqlerrors.QueryError{{
			Message:    message,
			Extensions: map[string]interface{}{"code": "BAD_REQUEST"},
		}},
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
