package usecases

import (
	"context"

	"leaguemotd/internal/application/motd/dto"
	"leaguemotd/internal/domain/motd"
	"leaguemotd/internal/shared/errors"
	"leaguemotd/internal/shared/logger"
	"leaguemotd/internal/shared/utils"
)

type ReplaceMOTDCommand struct {
	Language string      `json:"language" validate:"required"`
	Old      dto.MOTDDTO `json:"old"`
	New      dto.MOTDDTO `json:"new"`
}

type replaceTarget struct {
	Message string  `json:"message" validate:"required,singleline"`
	URL     *string `json:"url" validate:"omitempty,singleline"`
}

type ReplaceMOTDExecutor interface {
	Execute(ctx context.Context, cmd ReplaceMOTDCommand) error
}

// ReplaceMOTDUseCase changes a MOTD by removing the old text and adding the
// new one. The two steps are separate round-trips and are not atomic.
type ReplaceMOTDUseCase struct {
	repo      motd.Repository
	languages *LanguagePolicy
	logger    logger.Interface
}

func NewReplaceMOTDUseCase(repo motd.Repository, languages *LanguagePolicy, logger logger.Interface) *ReplaceMOTDUseCase {
	return &ReplaceMOTDUseCase{
		repo:      repo,
		languages: languages,
		logger:    logger,
	}
}

func (uc *ReplaceMOTDUseCase) Execute(ctx context.Context, cmd ReplaceMOTDCommand) error {
	if err := utils.ValidateStruct(&cmd); err != nil {
		return err
	}
	if err := utils.ValidateStruct(&replaceTarget{Message: cmd.New.Message, URL: cmd.New.URL}); err != nil {
		return err
	}
	if err := uc.languages.Check(cmd.Language); err != nil {
		return err
	}

	oldMOTD := cmd.Old.ToDomain()
	newMOTD := cmd.New.ToDomain()
	if oldMOTD.Equal(newMOTD) {
		return nil
	}

	if err := uc.repo.Remove(ctx, cmd.Language, oldMOTD); err != nil {
		uc.logger.Errorw("failed to remove old motd", "language", cmd.Language, "error", err)
		return errors.WrapInternal("failed to replace motd", err)
	}

	if err := uc.repo.Add(ctx, cmd.Language, newMOTD); err != nil {
		uc.logger.Errorw("failed to add new motd", "language", cmd.Language, "error", err)
		// Best effort: put the old text back.
		if restoreErr := uc.repo.Add(ctx, cmd.Language, oldMOTD); restoreErr != nil {
			uc.logger.Errorw("failed to restore old motd", "language", cmd.Language, "error", restoreErr)
		}
		return errors.WrapInternal("failed to replace motd", err)
	}

	uc.logger.Infow("motd replaced", "language", cmd.Language)
	return nil
}
