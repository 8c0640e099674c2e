package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/m-mizutani/gitfrost/pkg/domain/model"
)

type UseCase interface {
	CreateIssue(ctx context.Context, sub *model.IssueSubmission) (*model.CreatedIssue, error)
	ListOpenIssues(ctx context.Context) ([]model.IssueRecord, error)
}
