package usecases

import (
	"context"

	"leaguemotd/internal/application/motd/dto"
	"leaguemotd/internal/domain/motd"
	"leaguemotd/internal/shared/errors"
	"leaguemotd/internal/shared/logger"
)

type ListMOTDsQuery struct {
	Language string
}

type ListMOTDsResult struct {
	Language string        `json:"language" yaml:"language"`
	Items    []dto.MOTDDTO `json:"items" yaml:"items"`
}

type ListMOTDsExecutor interface {
	Execute(ctx context.Context, query ListMOTDsQuery) (*ListMOTDsResult, error)
}

type ListMOTDsUseCase struct {
	repo      motd.Repository
	languages *LanguagePolicy
	logger    logger.Interface
}

func NewListMOTDsUseCase(repo motd.Repository, languages *LanguagePolicy, logger logger.Interface) *ListMOTDsUseCase {
	return &ListMOTDsUseCase{
		repo:      repo,
		languages: languages,
		logger:    logger,
	}
}

func (uc *ListMOTDsUseCase) Execute(ctx context.Context, query ListMOTDsQuery) (*ListMOTDsResult, error) {
	if err := uc.languages.Check(query.Language); err != nil {
		return nil, err
	}

	motds, err := uc.repo.List(ctx, query.Language)
	if err != nil {
		uc.logger.Errorw("failed to list motds", "language", query.Language, "error", err)
		return nil, errors.WrapInternal("failed to list motds", err)
	}

	uc.logger.Debugw("listed motds", "language", query.Language, "count", len(motds))

	return &ListMOTDsResult{
		Language: query.Language,
		Items:    dto.ToMOTDDTOList(motds),
	}, nil
}
