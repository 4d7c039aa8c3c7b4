package apierrors

import "github.com/mugiliam/hatchcatalogctl/internal/common/apperrors"

var (
	ErrRequestValidation apperrors.Error = apperrors.New("invalid command arguments").SetExitCode(2)
	ErrUnknownCommand    apperrors.Error = ErrRequestValidation.Msg("unknown command")

	ErrRequestResolution apperrors.Error = apperrors.New("error resolving request").SetExitCode(1)
	ErrNoBuilder         apperrors.Error = ErrRequestResolution.Msg("no request builder for command")
	ErrPayloadEncoding   apperrors.Error = ErrRequestResolution.Msg("failed to encode request body")
	ErrPropertyFetch     apperrors.Error = ErrRequestResolution.Msg("failed to fetch current properties")
)
