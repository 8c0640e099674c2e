package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"log/slog"

	"github.com/m-mizutani/gitfrost/pkg/domain/interfaces"
	"github.com/m-mizutani/gitfrost/pkg/domain/model"
	"github.com/m-mizutani/gitfrost/pkg/domain/types"
	"github.com/m-mizutani/gitfrost/pkg/utils/errutil"
	"github.com/m-mizutani/gitfrost/pkg/utils/logging"
	"github.com/m-mizutani/gitfrost/pkg/utils/safe"
)

// User-facing messages. Raw upstream errors never appear here; they stay
// in the server logs.
const (
	msgIssueCreated       = "Issue criada com sucesso!"
	msgMissingFields      = "Título e descrição são obrigatórios"
	msgUnauthorized       = "Acesso não autorizado"
	msgServerConfig       = "Configuração do servidor incompleta"
	msgCreateFailed       = "Erro ao criar issue. Tente novamente."
	msgRepoConfigNotFound = "Configuração do repositório não encontrada"
	msgListFailed         = "Erro ao buscar issues do GitHub"
)

type createIssueResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	IssueURL string `json:"issueUrl,omitempty"`
}

type listIssuesResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message,omitempty"`
	Issues  []model.IssueRecord `json:"issues"`
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.Default().Error("fail to encode response", slog.Any("error", err))
	}
}

func handleCreateIssue(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer safe.Close(r.Body)

		var sub model.IssueSubmission
		if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
			logging.From(r.Context()).Warn("malformed submission", slog.Any("error", err))
			writeJSON(w, http.StatusBadRequest, createIssueResponse{
				Success: false,
				Message: msgMissingFields,
			})
			return
		}

		created, err := uc.CreateIssue(r.Context(), &sub)
		if err != nil {
			status, msg := createFailure(err)
			if status >= http.StatusInternalServerError {
				errutil.HandleError(r.Context(), "fail to create issue", err)
			} else {
				logging.From(r.Context()).Warn("rejected submission", slog.Any("error", err))
			}
			writeJSON(w, status, createIssueResponse{
				Success: false,
				Message: msg,
			})
			return
		}

		writeJSON(w, http.StatusOK, createIssueResponse{
			Success:  true,
			Message:  msgIssueCreated,
			IssueURL: created.URL,
		})
	}
}

func handleListIssues(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := uc.ListOpenIssues(r.Context())
		if err != nil {
			status, msg := listFailure(err)
			errutil.HandleError(r.Context(), "fail to list issues", err)
			writeJSON(w, status, listIssuesResponse{
				Success: false,
				Message: msg,
				Issues:  []model.IssueRecord{},
			})
			return
		}

		if records == nil {
			records = []model.IssueRecord{}
		}
		writeJSON(w, http.StatusOK, listIssuesResponse{
			Success: true,
			Issues:  records,
		})
	}
}

func createFailure(err error) (int, string) {
	switch {
	case errors.Is(err, types.ErrValidationFailed):
		return http.StatusBadRequest, msgMissingFields
	case errors.Is(err, types.ErrUnauthorized):
		return http.StatusUnauthorized, msgUnauthorized
	case errors.Is(err, types.ErrServerMisconfigured):
		return http.StatusInternalServerError, msgServerConfig
	default:
		return http.StatusBadGateway, msgCreateFailed
	}
}

func listFailure(err error) (int, string) {
	if errors.Is(err, types.ErrServerMisconfigured) {
		return http.StatusInternalServerError, msgRepoConfigNotFound
	}
	return http.StatusBadGateway, msgListFailed
}
