package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/gitfrost/pkg/domain/interfaces"
	"github.com/m-mizutani/gitfrost/pkg/domain/model"
	"github.com/m-mizutani/gitfrost/pkg/domain/types"
	"github.com/m-mizutani/gitfrost/pkg/utils/logging"
)

// maxIssueList is a fixed cap, not configurable. Issues beyond it are
// silently not shown.
const maxIssueList = 50

// ListOpenIssues fetches the open issues carrying the gitfrost label,
// newest first, and normalizes them for display. The result is never
// cached; upstream is the sole source of truth.
func (x *UseCase) ListOpenIssues(ctx context.Context) ([]model.IssueRecord, error) {
	if err := x.upstream.Validate(); err != nil {
		return nil, err
	}

	issues, err := x.clients.GitHubIssues().ListOpenIssues(ctx, &interfaces.ListIssuesInput{
		Owner: x.upstream.Owner,
		Repo:  x.upstream.RepoName,
		Label: model.IssueLabel,
		Limit: maxIssueList,
	})
	if err != nil {
		return nil, goerr.Wrap(types.ErrUpstreamFailure, "failed to list issues",
			goerr.V("error", err),
		)
	}

	records := make([]model.IssueRecord, 0, len(issues))
	for _, issue := range issues {
		// The fetch filter already requests open issues only, but the
		// contract must hold even against a misbehaving upstream.
		if issue.GetState() != string(types.IssueStateOpen) {
			continue
		}
		if len(records) >= maxIssueList {
			break
		}

		rec := model.IssueRecord{
			Number:     issue.GetNumber(),
			Title:      issue.GetTitle(),
			Body:       issue.GetBody(),
			URL:        issue.GetHTMLURL(),
			CreatedAt:  issue.GetCreatedAt().Time,
			State:      types.IssueState(issue.GetState()),
			ReportedBy: issue.GetUser().GetLogin(),
		}
		if rec.ReportedBy == "" {
			rec.ReportedBy = model.UnknownReporter
		}

		records = append(records, rec)
	}

	logging.From(ctx).Debug("listed open issues", slog.Int("count", len(records)))

	return records, nil
}
