package config

import (
	"log/slog"

	"github.com/m-mizutani/gitfrost/pkg/domain/model"
	"github.com/m-mizutani/gitfrost/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// GitHub identifies the fixed upstream repository. The fields are not
// required at startup: a missing one surfaces per-operation as a
// configuration failure, never as an upstream error.
type GitHub struct {
	token    types.GitHubToken `masq:"secret"`
	owner    string
	repoName string
}

func (x *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub personal access token",
			Category:    "GitHub",
			Destination: (*string)(&x.token),
			Sources:     cli.EnvVars("GITFROST_GITHUB_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "github-owner",
			Usage:       "Owner of the repository receiving the reports",
			Category:    "GitHub",
			Destination: &x.owner,
			Sources:     cli.EnvVars("GITFROST_GITHUB_OWNER"),
		},
		&cli.StringFlag{
			Name:        "github-repo",
			Usage:       "Name of the repository receiving the reports",
			Category:    "GitHub",
			Destination: &x.repoName,
			Sources:     cli.EnvVars("GITFROST_GITHUB_REPO"),
		},
	}
}

func (x GitHub) Upstream() model.UpstreamRepo {
	return model.UpstreamRepo{
		Token:    x.token,
		Owner:    x.owner,
		RepoName: x.repoName,
	}
}

func (x GitHub) Token() types.GitHubToken {
	return x.token
}

func (x GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("Owner", x.owner),
		slog.String("RepoName", x.repoName),
		slog.Int("Token.len", len(x.token)),
	)
}
