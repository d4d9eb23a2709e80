package usecases

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leaguemotd/internal/application/motd/dto"
	"leaguemotd/internal/domain/motd"
	"leaguemotd/internal/shared/errors"
)

func TestListMOTDsUseCase_Execute_Success(t *testing.T) {
	repo := &mockMOTDRepository{
		ListFunc: func(ctx context.Context, lang string) ([]*motd.MOTD, error) {
			assert.Equal(t, "de", lang)
			return []*motd.MOTD{
				motd.NewMOTD("Hallo Welt", "http://example.com"),
				motd.NewMOTD("Servus", ""),
			}, nil
		},
	}

	uc := NewListMOTDsUseCase(repo, testLanguages(), &mockLogger{})
	result, err := uc.Execute(context.Background(), ListMOTDsQuery{Language: "de"})

	require.NoError(t, err)
	assert.Equal(t, "de", result.Language)
	assert.Equal(t, []dto.MOTDDTO{
		{Message: "Hallo Welt", URL: strPtr("http://example.com")},
		{Message: "Servus"},
	}, result.Items)
}

func TestListMOTDsUseCase_Execute_EmptyCollection(t *testing.T) {
	uc := NewListMOTDsUseCase(&mockMOTDRepository{}, testLanguages(), &mockLogger{})

	result, err := uc.Execute(context.Background(), ListMOTDsQuery{Language: "fr"})

	require.NoError(t, err)
	assert.NotNil(t, result.Items)
	assert.Empty(t, result.Items)
}

func TestListMOTDsUseCase_Execute_UnsupportedLanguage(t *testing.T) {
	repo := &mockMOTDRepository{}
	uc := NewListMOTDsUseCase(repo, testLanguages(), &mockLogger{})

	_, err := uc.Execute(context.Background(), ListMOTDsQuery{Language: "xx"})

	assert.True(t, errors.IsValidationError(err))
	assert.Empty(t, repo.calls)
}

func TestListMOTDsUseCase_Execute_StoreError(t *testing.T) {
	storeErr := &motd.StoreError{Op: "list", Key: "league:motd:de", Err: stderrors.New("connection refused")}
	repo := &mockMOTDRepository{
		ListFunc: func(ctx context.Context, lang string) ([]*motd.MOTD, error) {
			return nil, storeErr
		},
	}

	uc := NewListMOTDsUseCase(repo, testLanguages(), &mockLogger{})
	_, err := uc.Execute(context.Background(), ListMOTDsQuery{Language: "de"})

	require.Error(t, err)
	var target *motd.StoreError
	assert.True(t, stderrors.As(err, &target))
	assert.Equal(t, errors.ErrorTypeInternal, errors.GetAppError(err).Type)
}

func TestAddMOTDUseCase_Execute_Success(t *testing.T) {
	var stored *motd.MOTD
	repo := &mockMOTDRepository{
		AddFunc: func(ctx context.Context, lang string, m *motd.MOTD) error {
			assert.Equal(t, "de", lang)
			stored = m
			return nil
		},
	}

	uc := NewAddMOTDUseCase(repo, testLanguages(), &mockLogger{})
	err := uc.Execute(context.Background(), AddMOTDCommand{
		Language: "de",
		Message:  "Hallo Welt",
		URL:      "http://example.com",
	})

	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "Hallo Welt\nMOTDURL=http://example.com", stored.String())
}

func TestAddMOTDUseCase_Execute_WithoutURL(t *testing.T) {
	repo := &mockMOTDRepository{}
	uc := NewAddMOTDUseCase(repo, testLanguages(), &mockLogger{})

	require.NoError(t, uc.Execute(context.Background(), AddMOTDCommand{Language: "en", Message: "Welcome"}))
	assert.Equal(t, []string{"add:Welcome"}, repo.calls)
}

func TestAddMOTDUseCase_Execute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		command AddMOTDCommand
	}{
		{name: "empty message", command: AddMOTDCommand{Language: "de"}},
		{name: "multiline message", command: AddMOTDCommand{Language: "de", Message: "a\nb"}},
		{name: "multiline url", command: AddMOTDCommand{Language: "de", Message: "a", URL: "http://x\nMOTDURL=y"}},
		{name: "missing language", command: AddMOTDCommand{Message: "a"}},
		{name: "unsupported language", command: AddMOTDCommand{Language: "xx", Message: "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockMOTDRepository{}
			uc := NewAddMOTDUseCase(repo, testLanguages(), &mockLogger{})

			err := uc.Execute(context.Background(), tt.command)

			assert.True(t, errors.IsValidationError(err), "got %v", err)
			assert.Empty(t, repo.calls)
		})
	}
}

func TestAddMOTDUseCase_Execute_StoreError(t *testing.T) {
	cause := stderrors.New("i/o timeout")
	repo := &mockMOTDRepository{
		AddFunc: func(ctx context.Context, lang string, m *motd.MOTD) error {
			return &motd.StoreError{Op: "add", Key: "league:motd:de", Err: cause}
		},
	}

	uc := NewAddMOTDUseCase(repo, testLanguages(), &mockLogger{})
	err := uc.Execute(context.Background(), AddMOTDCommand{Language: "de", Message: "x"})

	assert.ErrorIs(t, err, cause)
}

func TestRemoveMOTDUseCase_Execute(t *testing.T) {
	var removed *motd.MOTD
	repo := &mockMOTDRepository{
		RemoveFunc: func(ctx context.Context, lang string, m *motd.MOTD) error {
			removed = m
			return nil
		},
	}

	uc := NewRemoveMOTDUseCase(repo, testLanguages(), &mockLogger{})
	err := uc.Execute(context.Background(), RemoveMOTDCommand{Language: "en", Message: "old news", URL: strPtr("http://a")})

	require.NoError(t, err)
	assert.Equal(t, "old news\nMOTDURL=http://a", removed.String())
}

func TestRemoveMOTDUseCase_Execute_EmptyURLIsKept(t *testing.T) {
	repo := &mockMOTDRepository{}
	uc := NewRemoveMOTDUseCase(repo, testLanguages(), &mockLogger{})

	require.NoError(t, uc.Execute(context.Background(), RemoveMOTDCommand{Language: "en", Message: "Hi", URL: strPtr("")}))
	require.NoError(t, uc.Execute(context.Background(), RemoveMOTDCommand{Language: "en", Message: "Hi"}))

	assert.Equal(t, []string{"remove:Hi\nMOTDURL=", "remove:Hi"}, repo.calls)
}

func TestRemoveMOTDUseCase_Execute_Errors(t *testing.T) {
	uc := NewRemoveMOTDUseCase(&mockMOTDRepository{}, testLanguages(), &mockLogger{})
	err := uc.Execute(context.Background(), RemoveMOTDCommand{Language: "xx", Message: "a"})
	assert.True(t, errors.IsValidationError(err))

	cause := stderrors.New("broken pipe")
	repo := &mockMOTDRepository{
		RemoveFunc: func(ctx context.Context, lang string, m *motd.MOTD) error {
			return &motd.StoreError{Op: "remove", Key: "league:motd:en", Err: cause}
		},
	}
	uc = NewRemoveMOTDUseCase(repo, testLanguages(), &mockLogger{})
	err = uc.Execute(context.Background(), RemoveMOTDCommand{Language: "en", Message: "a"})
	assert.ErrorIs(t, err, cause)
}

func TestReplaceMOTDUseCase_Execute(t *testing.T) {
	repo := &mockMOTDRepository{}
	uc := NewReplaceMOTDUseCase(repo, testLanguages(), &mockLogger{})

	err := uc.Execute(context.Background(), ReplaceMOTDCommand{
		Language: "en",
		Old:      dto.MOTDDTO{Message: "Season 1"},
		New:      dto.MOTDDTO{Message: "Season 2", URL: strPtr("http://example.com/s2")},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{
		"remove:Season 1",
		"add:Season 2\nMOTDURL=http://example.com/s2",
	}, repo.calls)
}

func TestReplaceMOTDUseCase_Execute_EmptyURLRoundTrips(t *testing.T) {
	repo := &mockMOTDRepository{
		ListFunc: func(ctx context.Context, lang string) ([]*motd.MOTD, error) {
			m, err := motd.Parse("Hi\nMOTDURL=")
			return []*motd.MOTD{m}, err
		},
	}
	listed, err := NewListMOTDsUseCase(repo, testLanguages(), &mockLogger{}).
		Execute(context.Background(), ListMOTDsQuery{Language: "en"})
	require.NoError(t, err)
	require.Len(t, listed.Items, 1)
	require.NotNil(t, listed.Items[0].URL)

	uc := NewReplaceMOTDUseCase(repo, testLanguages(), &mockLogger{})
	err = uc.Execute(context.Background(), ReplaceMOTDCommand{
		Language: "en",
		Old:      listed.Items[0],
		New:      dto.MOTDDTO{Message: "Hello", URL: listed.Items[0].URL},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"list", "remove:Hi\nMOTDURL=", "add:Hello\nMOTDURL="}, repo.calls)
}

func TestReplaceMOTDUseCase_Execute_SameContentIsNoop(t *testing.T) {
	repo := &mockMOTDRepository{}
	uc := NewReplaceMOTDUseCase(repo, testLanguages(), &mockLogger{})

	err := uc.Execute(context.Background(), ReplaceMOTDCommand{
		Language: "en",
		Old:      dto.MOTDDTO{Message: "same"},
		New:      dto.MOTDDTO{Message: "same"},
	})

	require.NoError(t, err)
	assert.Empty(t, repo.calls)
}

func TestReplaceMOTDUseCase_Execute_RejectsInvalidReplacement(t *testing.T) {
	repo := &mockMOTDRepository{}
	uc := NewReplaceMOTDUseCase(repo, testLanguages(), &mockLogger{})

	err := uc.Execute(context.Background(), ReplaceMOTDCommand{
		Language: "en",
		Old:      dto.MOTDDTO{Message: "old"},
		New:      dto.MOTDDTO{Message: "two\nlines"},
	})

	assert.True(t, errors.IsValidationError(err))
	assert.Empty(t, repo.calls)
}

func TestReplaceMOTDUseCase_Execute_AddFailureRestoresOld(t *testing.T) {
	cause := stderrors.New("connection reset")
	repo := &mockMOTDRepository{}
	repo.AddFunc = func(ctx context.Context, lang string, m *motd.MOTD) error {
		if m.Message == "new" {
			return &motd.StoreError{Op: "add", Key: "league:motd:en", Err: cause}
		}
		return nil
	}

	uc := NewReplaceMOTDUseCase(repo, testLanguages(), &mockLogger{})
	err := uc.Execute(context.Background(), ReplaceMOTDCommand{
		Language: "en",
		Old:      dto.MOTDDTO{Message: "old"},
		New:      dto.MOTDDTO{Message: "new"},
	})

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, []string{"remove:old", "add:new", "add:old"}, repo.calls)
}
