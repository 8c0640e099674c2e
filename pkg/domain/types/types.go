package types

import "log/slog"

type (
	GitHubToken  string
	ClientSecret string
	AccessToken  string
	IssueState   string
)

const (
	IssueStateOpen   IssueState = "open"
	IssueStateClosed IssueState = "closed"
)

func (x GitHubToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubToken) String() string {
	return "***********"
}

func (x ClientSecret) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x ClientSecret) String() string {
	return "***********"
}

func (x AccessToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x AccessToken) String() string {
	return "***********"
}
