package model

import (
	"time"

	"github.com/m-mizutani/gitfrost/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// IssueLabel is attached to every issue created by gitfrost. The listing
// operation filters by the same label, so only issues created through the
// form are ever shown.
const IssueLabel = "gitfrost"

// UnknownReporter is shown when the upstream record carries no author login.
const UnknownReporter = "Desconhecido"

// IssueSubmission is one form submission. It lives only for the duration
// of the request that carries it.
type IssueSubmission struct {
	Title  string             `json:"title"`
	Body   string             `json:"body"`
	Secret types.ClientSecret `json:"clientSecret" masq:"secret"`
}

func (x *IssueSubmission) Validate() error {
	if x.Title == "" {
		return goerr.Wrap(types.ErrValidationFailed, "title is empty")
	}
	if x.Body == "" {
		return goerr.Wrap(types.ErrValidationFailed, "body is empty")
	}
	return nil
}

// CreatedIssue is the outcome of a successful creation.
type CreatedIssue struct {
	URL string `json:"url"`
}

// IssueRecord is the read model for the listing view. It is fetched fresh
// from upstream on every request and never persisted.
type IssueRecord struct {
	Number     int              `json:"number"`
	Title      string           `json:"title"`
	Body       string           `json:"body"`
	URL        string           `json:"url"`
	CreatedAt  time.Time        `json:"createdAt"`
	State      types.IssueState `json:"state"`
	ReportedBy string           `json:"user"`
}
