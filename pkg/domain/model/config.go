package model

import (
	"github.com/m-mizutani/gitfrost/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// UpstreamRepo identifies the fixed GitHub repository that receives the
// reports. It is built once at process start and never changes.
type UpstreamRepo struct {
	Token    types.GitHubToken `masq:"secret"`
	Owner    string
	RepoName string
}

// Validate checks that the full upstream identity is configured. A missing
// field must be distinguishable from a genuine upstream failure, so it is
// checked before any network call.
func (x *UpstreamRepo) Validate() error {
	if x.Token == "" {
		return goerr.Wrap(types.ErrServerMisconfigured, "github token is empty")
	}
	if x.Owner == "" {
		return goerr.Wrap(types.ErrServerMisconfigured, "github owner is empty")
	}
	if x.RepoName == "" {
		return goerr.Wrap(types.ErrServerMisconfigured, "github repo is empty")
	}
	return nil
}
