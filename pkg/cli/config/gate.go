package config

import (
	"log/slog"

	"github.com/m-mizutani/gitfrost/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// Gate carries the two access credentials: the shared secret required for
// issue creation, and the optional page-access token. Leaving the page
// token unset runs the deployment in open mode; there is no open mode for
// the creation secret.
type Gate struct {
	clientSecret types.ClientSecret `masq:"secret"`
	accessToken  types.AccessToken  `masq:"secret"`
}

func (x *Gate) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "client-secret",
			Usage:       "Shared secret required to create issues",
			Category:    "Gate",
			Destination: (*string)(&x.clientSecret),
			Sources:     cli.EnvVars("GITFROST_CLIENT_SECRET"),
		},
		&cli.StringFlag{
			Name:        "access-token",
			Usage:       "Page access token; leave unset to allow all page views",
			Category:    "Gate",
			Destination: (*string)(&x.accessToken),
			Sources:     cli.EnvVars("GITFROST_ACCESS_TOKEN"),
		},
	}
}

func (x Gate) ClientSecret() types.ClientSecret {
	return x.clientSecret
}

func (x Gate) AccessToken() types.AccessToken {
	return x.accessToken
}

func (x Gate) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("ClientSecret.len", len(x.clientSecret)),
		slog.Int("AccessToken.len", len(x.accessToken)),
	)
}
