package ghissue

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/oauth2"

	"github.com/m-mizutani/gitfrost/pkg/domain/interfaces"
	"github.com/m-mizutani/gitfrost/pkg/domain/types"
	"github.com/m-mizutani/gitfrost/pkg/utils/logging"
)

// Client talks to the GitHub REST API with a personal access token.
type Client struct {
	token      types.GitHubToken
	httpClient *http.Client
}

var _ interfaces.GitHubIssues = (*Client)(nil)

type Option func(*Client)

// WithHTTPClient sets the HTTP client used underneath the oauth2
// transport. Tests use it to run against a stub instead of the network.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(x *Client) {
		x.httpClient = httpClient
	}
}

func New(token types.GitHubToken, options ...Option) (*Client, error) {
	if token == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "github token is empty")
	}

	client := &Client{
		token: token,
	}
	for _, opt := range options {
		opt(client)
	}

	return client, nil
}

func (x *Client) buildGithubClient(ctx context.Context) *github.Client {
	if x.httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, x.httpClient)
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: string(x.token),
	})
	return github.NewClient(oauth2.NewClient(ctx, ts))
}

func (x *Client) CreateIssue(ctx context.Context, input *interfaces.CreateIssueInput) (*github.Issue, error) {
	client := x.buildGithubClient(ctx)

	req := &github.IssueRequest{
		Title:  &input.Title,
		Body:   &input.Body,
		Labels: &input.Labels,
	}

	issue, resp, err := client.Issues.Create(ctx, input.Owner, input.Repo, req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create issue",
			goerr.V("owner", input.Owner),
			goerr.V("repo", input.Repo),
		)
	}
	if resp.StatusCode != http.StatusCreated {
		return nil, goerr.New("unexpected status on issue creation",
			goerr.V("status", resp.StatusCode),
		)
	}

	logging.From(ctx).Info("created issue",
		slog.String("owner", input.Owner),
		slog.String("repo", input.Repo),
		slog.Int("number", issue.GetNumber()),
		slog.String("url", issue.GetHTMLURL()),
	)

	return issue, nil
}

func (x *Client) ListOpenIssues(ctx context.Context, input *interfaces.ListIssuesInput) ([]*github.Issue, error) {
	client := x.buildGithubClient(ctx)

	opts := &github.IssueListByRepoOptions{
		State:     string(types.IssueStateOpen),
		Labels:    []string{input.Label},
		Sort:      "created",
		Direction: "desc",
		ListOptions: github.ListOptions{
			PerPage: input.Limit,
		},
	}

	issues, _, err := client.Issues.ListByRepo(ctx, input.Owner, input.Repo, opts)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list issues",
			goerr.V("owner", input.Owner),
			goerr.V("repo", input.Repo),
			goerr.V("label", input.Label),
		)
	}

	logging.From(ctx).Debug("listed issues",
		slog.String("owner", input.Owner),
		slog.String("repo", input.Repo),
		slog.Int("count", len(issues)),
	)

	return issues, nil
}
