package ghissue_test

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/m-mizutani/gitfrost/pkg/domain/interfaces"
	"github.com/m-mizutani/gitfrost/pkg/domain/model"
	"github.com/m-mizutani/gitfrost/pkg/domain/types"
	"github.com/m-mizutani/gitfrost/pkg/infra/ghissue"
	"github.com/m-mizutani/gitfrost/pkg/utils/testutil"
	"github.com/m-mizutani/gt"
)

func TestNew(t *testing.T) {
	t.Run("create new client with valid token", func(t *testing.T) {
		client, err := ghissue.New(types.GitHubToken("ghp_dummy"))
		gt.NoError(t, err)
		gt.V(t, client).NotEqual(nil)
	})

	t.Run("create with empty token fails", func(t *testing.T) {
		client, err := ghissue.New(types.GitHubToken(""))
		gt.Error(t, err)
		gt.V(t, client).Equal(nil)
	})
}

type stubTransport struct {
	roundTrip func(req *http.Request) (*http.Response, error)
}

func (x *stubTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	return x.roundTrip(req)
}

func stubResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header: http.Header{
			"Content-Type": []string{"application/json; charset=utf-8"},
		},
		Body: io.NopCloser(strings.NewReader(body)),
	}
}

func TestCreateIssue(t *testing.T) {
	var gotReq *http.Request
	var gotBody string
	httpClient := &http.Client{
		Transport: &stubTransport{
			roundTrip: func(req *http.Request) (*http.Response, error) {
				gotReq = req
				raw, err := io.ReadAll(req.Body)
				gt.NoError(t, err)
				gotBody = string(raw)
				return stubResponse(http.StatusCreated, `{
					"number": 12,
					"title": "Broken login",
					"state": "open",
					"html_url": "https://github.com/frosty/reports/issues/12"
				}`), nil
			},
		},
	}

	client, err := ghissue.New(types.GitHubToken("ghp_dummy"), ghissue.WithHTTPClient(httpClient))
	gt.NoError(t, err)

	issue, err := client.CreateIssue(context.Background(), &interfaces.CreateIssueInput{
		Owner:  "frosty",
		Repo:   "reports",
		Title:  "Broken login",
		Body:   "steps to reproduce",
		Labels: []string{model.IssueLabel},
	})
	gt.NoError(t, err)

	gt.V(t, gotReq.Method).Equal(http.MethodPost)
	gt.V(t, gotReq.URL.Path).Equal("/repos/frosty/reports/issues")
	gt.V(t, gotReq.Header.Get("Authorization")).Equal("Bearer ghp_dummy")
	gt.S(t, gotBody).Contains(`"title":"Broken login"`)
	gt.S(t, gotBody).Contains(`"labels":["gitfrost"]`)

	gt.V(t, issue.GetNumber()).Equal(12)
	gt.V(t, issue.GetHTMLURL()).Equal("https://github.com/frosty/reports/issues/12")
}

func TestListOpenIssues(t *testing.T) {
	var gotReq *http.Request
	httpClient := &http.Client{
		Transport: &stubTransport{
			roundTrip: func(req *http.Request) (*http.Response, error) {
				gotReq = req
				return stubResponse(http.StatusOK, `[
					{"number": 7, "title": "First", "state": "open", "html_url": "https://github.com/frosty/reports/issues/7"},
					{"number": 3, "title": "Second", "state": "open", "html_url": "https://github.com/frosty/reports/issues/3"}
				]`), nil
			},
		},
	}

	client, err := ghissue.New(types.GitHubToken("ghp_dummy"), ghissue.WithHTTPClient(httpClient))
	gt.NoError(t, err)

	issues, err := client.ListOpenIssues(context.Background(), &interfaces.ListIssuesInput{
		Owner: "frosty",
		Repo:  "reports",
		Label: model.IssueLabel,
		Limit: 50,
	})
	gt.NoError(t, err)

	gt.V(t, gotReq.Method).Equal(http.MethodGet)
	gt.V(t, gotReq.URL.Path).Equal("/repos/frosty/reports/issues")
	gt.V(t, gotReq.Header.Get("Authorization")).Equal("Bearer ghp_dummy")

	query := gotReq.URL.Query()
	gt.V(t, query.Get("state")).Equal(string(types.IssueStateOpen))
	gt.V(t, query.Get("labels")).Equal(model.IssueLabel)
	gt.V(t, query.Get("sort")).Equal("created")
	gt.V(t, query.Get("direction")).Equal("desc")
	gt.V(t, query.Get("per_page")).Equal("50")

	gt.V(t, len(issues)).Equal(2)
	gt.V(t, issues[0].GetNumber()).Equal(7)
	gt.V(t, issues[1].GetNumber()).Equal(3)
}

func TestListOpenIssues_Integration(t *testing.T) {
	token := testutil.GetEnvOrSkip(t, "TEST_GITHUB_TOKEN")
	owner := testutil.GetEnvOrSkip(t, "TEST_GITHUB_OWNER")
	repo := testutil.GetEnvOrSkip(t, "TEST_GITHUB_REPO")

	client, err := ghissue.New(types.GitHubToken(token))
	gt.NoError(t, err)

	ctx := context.Background()

	issues, err := client.ListOpenIssues(ctx, &interfaces.ListIssuesInput{
		Owner: owner,
		Repo:  repo,
		Label: model.IssueLabel,
		Limit: 50,
	})
	gt.NoError(t, err)

	t.Logf("Found %d open issues for %s/%s", len(issues), owner, repo)

	for _, issue := range issues {
		gt.V(t, issue.GetState()).Equal(string(types.IssueStateOpen))
		t.Logf("  - #%d %s (%s)", issue.GetNumber(), issue.GetTitle(), issue.GetHTMLURL())
	}
}
