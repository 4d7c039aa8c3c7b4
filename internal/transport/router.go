package transport

import (
	"context"

	"github.com/mugiliam/hatchcatalogctl/internal/catalogapi/requestmanager"
)

// ProfileApplier executes profile requests locally.
type ProfileApplier interface {
	Apply(ctx context.Context, p *requestmanager.RequestPayload) (any, error)
}

// Router sends profile requests to the profile store and everything else to the printer.
type Router struct {
	printer  *Printer
	profiles ProfileApplier
}

func NewRouter(printer *Printer, profiles ProfileApplier) *Router {
	return &Router{printer: printer, profiles: profiles}
}

func (r *Router) Send(ctx context.Context, p *requestmanager.RequestPayload) error {
	if p.Target() != requestmanager.TargetProfileStore || r.profiles == nil {
		return r.printer.Send(ctx, p)
	}
	result, err := r.profiles.Apply(ctx, p)
	if err != nil {
		return err
	}
	if result == nil {
		return nil
	}
	return r.printer.Print(result)
}
