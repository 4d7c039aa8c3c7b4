package argsource

import "github.com/mugiliam/hatchcatalogctl/internal/common/apperrors"

var (
	ErrArgumentSource   apperrors.Error = apperrors.New("failed to read arguments").SetExitCode(2)
	ErrEmptyDocument    apperrors.Error = ErrArgumentSource.Msg("empty argument document")
	ErrInvalidDocument  apperrors.Error = ErrArgumentSource.Msg("invalid argument document")
	ErrInvalidVersion   apperrors.Error = ErrArgumentSource.Msg("unsupported argument document version")
	ErrDocumentTooLarge apperrors.Error = ErrArgumentSource.Msg("argument document is too large")
)
