package usecases

import (
	"context"

	"leaguemotd/internal/domain/motd"
	"leaguemotd/internal/shared/errors"
	"leaguemotd/internal/shared/logger"
	"leaguemotd/internal/shared/utils"
)

type AddMOTDCommand struct {
	Language string `json:"language" validate:"required"`
	Message  string `json:"message" validate:"required,singleline"`
	URL      string `json:"url" validate:"singleline"`
}

type AddMOTDExecutor interface {
	Execute(ctx context.Context, cmd AddMOTDCommand) error
}

type AddMOTDUseCase struct {
	repo      motd.Repository
	languages *LanguagePolicy
	logger    logger.Interface
}

func NewAddMOTDUseCase(repo motd.Repository, languages *LanguagePolicy, logger logger.Interface) *AddMOTDUseCase {
	return &AddMOTDUseCase{
		repo:      repo,
		languages: languages,
		logger:    logger,
	}
}

// Execute stores the MOTD. Adding one that already exists succeeds.
func (uc *AddMOTDUseCase) Execute(ctx context.Context, cmd AddMOTDCommand) error {
	if err := utils.ValidateStruct(&cmd); err != nil {
		return err
	}
	if err := uc.languages.Check(cmd.Language); err != nil {
		return err
	}

	m := motd.NewMOTD(cmd.Message, cmd.URL)
	if err := uc.repo.Add(ctx, cmd.Language, m); err != nil {
		uc.logger.Errorw("failed to add motd", "language", cmd.Language, "error", err)
		return errors.WrapInternal("failed to add motd", err)
	}

	uc.logger.Infow("motd added", "language", cmd.Language, "has_url", m.HasURL())
	return nil
}
