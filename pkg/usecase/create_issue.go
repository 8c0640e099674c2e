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

// CreateIssue validates and authorizes the submission, then makes exactly
// one attempt to create a labeled issue on the upstream repository. Every
// early rejection returns before any network call. There is no retry; the
// caller surfaces the failure and the user resubmits manually.
func (x *UseCase) CreateIssue(ctx context.Context, sub *model.IssueSubmission) (*model.CreatedIssue, error) {
	if err := sub.Validate(); err != nil {
		return nil, err
	}

	if !authorizeCreation(sub.Secret, x.secret) {
		return nil, goerr.Wrap(types.ErrUnauthorized, "client secret mismatch")
	}

	if err := x.upstream.Validate(); err != nil {
		return nil, err
	}

	issue, err := x.clients.GitHubIssues().CreateIssue(ctx, &interfaces.CreateIssueInput{
		Owner:  x.upstream.Owner,
		Repo:   x.upstream.RepoName,
		Title:  sub.Title,
		Body:   sub.Body,
		Labels: []string{model.IssueLabel},
	})
	if err != nil {
		return nil, goerr.Wrap(types.ErrUpstreamFailure, "failed to create issue",
			goerr.V("error", err),
		)
	}

	logging.From(ctx).Info("issue created",
		slog.Int("number", issue.GetNumber()),
		slog.String("url", issue.GetHTMLURL()),
	)

	return &model.CreatedIssue{URL: issue.GetHTMLURL()}, nil
}
