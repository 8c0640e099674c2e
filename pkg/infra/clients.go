package infra

import (
	"github.com/m-mizutani/gitfrost/pkg/domain/interfaces"
)

type Clients struct {
	githubIssues interfaces.GitHubIssues
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) GitHubIssues() interfaces.GitHubIssues {
	return x.githubIssues
}

func WithGitHubIssues(client interfaces.GitHubIssues) Option {
	return func(x *Clients) {
		x.githubIssues = client
	}
}
