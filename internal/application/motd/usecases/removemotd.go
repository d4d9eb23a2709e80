package usecases

import (
	"context"

	"leaguemotd/internal/application/motd/dto"
	"leaguemotd/internal/domain/motd"
	"leaguemotd/internal/shared/errors"
	"leaguemotd/internal/shared/logger"
	"leaguemotd/internal/shared/utils"
)

// RemoveMOTDCommand identifies the MOTD by its exact content. URL is nil for
// a MOTD without a link line.
type RemoveMOTDCommand struct {
	Language string  `json:"language" validate:"required"`
	Message  string  `json:"message" validate:"singleline"`
	URL      *string `json:"url" validate:"omitempty,singleline"`
}

type RemoveMOTDExecutor interface {
	Execute(ctx context.Context, cmd RemoveMOTDCommand) error
}

type RemoveMOTDUseCase struct {
	repo      motd.Repository
	languages *LanguagePolicy
	logger    logger.Interface
}

func NewRemoveMOTDUseCase(repo motd.Repository, languages *LanguagePolicy, logger logger.Interface) *RemoveMOTDUseCase {
	return &RemoveMOTDUseCase{
		repo:      repo,
		languages: languages,
		logger:    logger,
	}
}

// Execute removes the matching MOTD. A MOTD that is not stored is ignored.
func (uc *RemoveMOTDUseCase) Execute(ctx context.Context, cmd RemoveMOTDCommand) error {
	if err := utils.ValidateStruct(&cmd); err != nil {
		return err
	}
	if err := uc.languages.Check(cmd.Language); err != nil {
		return err
	}

	target := dto.MOTDDTO{Message: cmd.Message, URL: cmd.URL}.ToDomain()
	if err := uc.repo.Remove(ctx, cmd.Language, target); err != nil {
		uc.logger.Errorw("failed to remove motd", "language", cmd.Language, "error", err)
		return errors.WrapInternal("failed to remove motd", err)
	}

	uc.logger.Infow("motd removed", "language", cmd.Language)
	return nil
}
