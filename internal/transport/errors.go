package transport

import "github.com/mugiliam/hatchcatalogctl/internal/common/apperrors"

var (
	ErrTransport     apperrors.Error = apperrors.New("failed to send request").SetExitCode(1)
	ErrOutput        apperrors.Error = ErrTransport.Msg("failed to write output").SetExpandError(true)
	ErrInvalidFormat apperrors.Error = ErrTransport.Msg("invalid output format")
)
