package model_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/gitfrost/pkg/domain/model"
	"github.com/m-mizutani/gitfrost/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestIssueSubmissionValidate(t *testing.T) {
	t.Run("valid submission", func(t *testing.T) {
		sub := &model.IssueSubmission{
			Title:  "Bug",
			Body:   "It crashes",
			Secret: "s3cret",
		}
		gt.NoError(t, sub.Validate())
	})

	t.Run("missing title", func(t *testing.T) {
		sub := &model.IssueSubmission{Body: "x"}
		err := sub.Validate()
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrValidationFailed))
	})

	t.Run("missing body", func(t *testing.T) {
		sub := &model.IssueSubmission{Title: "Bug"}
		err := sub.Validate()
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrValidationFailed))
	})

	t.Run("secret is not required for validation", func(t *testing.T) {
		// Authorization is a separate step with a separate outcome
		sub := &model.IssueSubmission{Title: "Bug", Body: "x"}
		gt.NoError(t, sub.Validate())
	})
}

func TestUpstreamRepoValidate(t *testing.T) {
	valid := model.UpstreamRepo{
		Token:    types.GitHubToken("ghp_test"),
		Owner:    "frosty",
		RepoName: "reports",
	}

	t.Run("fully configured upstream", func(t *testing.T) {
		upstream := valid
		gt.NoError(t, upstream.Validate())
	})

	t.Run("each missing field fails", func(t *testing.T) {
		cases := map[string]model.UpstreamRepo{
			"token": {Owner: valid.Owner, RepoName: valid.RepoName},
			"owner": {Token: valid.Token, RepoName: valid.RepoName},
			"repo":  {Token: valid.Token, Owner: valid.Owner},
		}
		for name, upstream := range cases {
			t.Run(name, func(t *testing.T) {
				err := upstream.Validate()
				gt.Error(t, err)
				gt.True(t, errors.Is(err, types.ErrServerMisconfigured))
			})
		}
	})
}
