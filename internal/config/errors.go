package config

import "github.com/mugiliam/hatchcatalogctl/internal/common/apperrors"

var (
	ErrConfig          apperrors.Error = apperrors.New("configuration error").SetExitCode(1)
	ErrConfigLoad      apperrors.Error = ErrConfig.Msg("failed to load config").SetExpandError(true)
	ErrConfigSave      apperrors.Error = ErrConfig.Msg("failed to save config").SetExpandError(true)
	ErrInvalidPort     apperrors.Error = ErrConfig.Msg("invalid port")
	ErrProfileNotFound apperrors.Error = ErrConfig.Msg("profile not found")
	ErrProfileExists   apperrors.Error = ErrConfig.Msg("profile already exists")
	ErrProfileRequest  apperrors.Error = ErrConfig.Msg("unsupported profile request")
)
