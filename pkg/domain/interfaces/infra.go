package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . GitHubIssues

import (
	"context"

	"github.com/google/go-github/v53/github"
)

// GitHubIssues is the capability set this service needs from the upstream
// issue tracker. Tests substitute a mock recording calls.
type GitHubIssues interface {
	CreateIssue(ctx context.Context, input *CreateIssueInput) (*github.Issue, error)
	ListOpenIssues(ctx context.Context, input *ListIssuesInput) ([]*github.Issue, error)
}

type CreateIssueInput struct {
	Owner  string
	Repo   string
	Title  string
	Body   string
	Labels []string
}

type ListIssuesInput struct {
	Owner string
	Repo  string
	Label string
	Limit int
}
