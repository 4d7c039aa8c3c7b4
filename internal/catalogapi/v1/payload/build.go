package payload

import (
	"github.com/mugiliam/hatchcatalogctl/internal/catalogapi/apierrors"
	"github.com/mugiliam/hatchcatalogctl/internal/catalogapi/requestmanager"
	"github.com/mugiliam/hatchcatalogctl/pkg/types"
)

// Build validates the body of r when cfg asks for it and freezes the request.
func Build(r requestmanager.Request, cfg *requestmanager.OptionsConfig) (*requestmanager.RequestPayload, error) {
	if r.Body != nil && (cfg == nil || cfg.Validate) {
		if ves := ValidateStruct(r.Body); ves != nil {
			return nil, ves
		}
	}
	p, err := requestmanager.NewRequestPayload(r)
	if err != nil {
		return nil, apierrors.ErrPayloadEncoding.Err(err)
	}
	return p, nil
}

// Properties returns props, or nil when it is empty so the field is left out of the body.
func Properties(props types.PropertyMap) types.PropertyMap {
	if len(props) == 0 {
		return nil
	}
	return props
}
