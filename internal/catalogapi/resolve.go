package catalogapi

import (
	"context"
	"errors"
	"slices"

	"github.com/mugiliam/hatchcatalogctl/internal/catalogapi/apierrors"
	"github.com/mugiliam/hatchcatalogctl/internal/catalogapi/argschema"
	"github.com/mugiliam/hatchcatalogctl/internal/catalogapi/builderregistry"
	"github.com/mugiliam/hatchcatalogctl/internal/catalogapi/properties"
	"github.com/mugiliam/hatchcatalogctl/internal/catalogapi/requestmanager"
	schemaerr "github.com/mugiliam/hatchcatalogctl/internal/catalogapi/schema/errors"
	"github.com/mugiliam/hatchcatalogctl/internal/common/apperrors"
	"github.com/mugiliam/hatchcatalogctl/pkg/types"
	"github.com/rs/zerolog/log"

	_ "github.com/mugiliam/hatchcatalogctl/internal/catalogapi/v1/catalog"       // Register request builders
	_ "github.com/mugiliam/hatchcatalogctl/internal/catalogapi/v1/catalogrole"   // Register request builders
	_ "github.com/mugiliam/hatchcatalogctl/internal/catalogapi/v1/namespace"     // Register request builders
	_ "github.com/mugiliam/hatchcatalogctl/internal/catalogapi/v1/principal"     // Register request builders
	_ "github.com/mugiliam/hatchcatalogctl/internal/catalogapi/v1/principalrole" // Register request builders
	_ "github.com/mugiliam/hatchcatalogctl/internal/catalogapi/v1/privilege"     // Register request builders
	_ "github.com/mugiliam/hatchcatalogctl/internal/catalogapi/v1/profile"       // Register request builders
)

// ValidationResult holds either a request or the violations that prevented building one, never
// both.
type ValidationResult struct {
	payload    *requestmanager.RequestPayload
	violations schemaerr.ValidationErrors
}

func (r ValidationResult) Valid() bool {
	return r.payload != nil
}

func (r ValidationResult) Payload() *requestmanager.RequestPayload {
	return r.payload
}

// Violations returns the violations sorted by argument name and rule kind.
func (r ValidationResult) Violations() schemaerr.ValidationErrors {
	return slices.Clone(r.violations)
}

// Err returns nil for a valid result, and ErrRequestValidation carrying every violation otherwise.
func (r ValidationResult) Err() apperrors.Error {
	if r.Valid() {
		return nil
	}
	return apierrors.ErrRequestValidation.Err(r.violations)
}

// PropertyFetcher supplies the current properties of the resource an update command targets.
type PropertyFetcher interface {
	FetchProperties(ctx context.Context, cmd types.Command, args types.ArgumentSet) (types.PropertyMap, error)
}

// Transport delivers a built request.
type Transport interface {
	Send(ctx context.Context, p *requestmanager.RequestPayload) error
}

type Resolver interface {
	Resolve(ctx context.Context, cmd types.Command, args types.ArgumentSet, opts ...requestmanager.Options) (ValidationResult, apperrors.Error)
}

type resolver struct{}

// NewResolver returns the Resolver backed by Resolve.
func NewResolver() Resolver {
	return resolver{}
}

func (resolver) Resolve(ctx context.Context, cmd types.Command, args types.ArgumentSet, opts ...requestmanager.Options) (ValidationResult, apperrors.Error) {
	return Resolve(ctx, cmd, args, opts...)
}

// Resolve validates args for cmd and builds the request. Argument, property and namespace
// violations are reported together. The returned error is only set when a request could not be
// built for a reason other than the input.
func Resolve(ctx context.Context, cmd types.Command, args types.ArgumentSet, opts ...requestmanager.Options) (ValidationResult, apperrors.Error) {
	cfg := requestmanager.NewOptionsConfig(opts...)
	var rep schemaerr.Reporter

	rep.Add(argschema.Validate(cmd, args)...)
	schema, ok := argschema.Lookup(cmd)
	if !ok {
		return ValidationResult{violations: rep.Report()}, nil
	}
	args = withDefaults(schema, args)

	props, ves := resolveProperties(schema, args, cfg.ExistingProperties)
	rep.Add(ves...)

	if !builderregistry.BuilderExists(cmd) {
		return ValidationResult{}, apierrors.ErrNoBuilder.Msg("no request builder for " + cmd.String())
	}
	build := builderregistry.GetBuilder(cmd)
	// the body cannot be checked meaningfully once the arguments are known to be wrong
	buildCfg := *cfg
	if !rep.Empty() {
		buildCfg.Validate = false
	}
	p, err := build(ctx, args, props, &buildCfg)
	if err != nil {
		var bves schemaerr.ValidationErrors
		if !errors.As(err, &bves) {
			log.Ctx(ctx).Error().Err(err).Str("command", cmd.String()).Msg("failed to build request")
			if appErr, ok := err.(apperrors.Error); ok {
				return ValidationResult{}, appErr
			}
			return ValidationResult{}, apierrors.ErrRequestResolution.Err(err)
		}
		rep.Add(bves...)
	}

	if !rep.Empty() {
		log.Ctx(ctx).Debug().Str("command", cmd.String()).Int("violations", rep.Len()).Msg("request rejected")
		return ValidationResult{violations: rep.Report()}, nil
	}
	log.Ctx(ctx).Debug().Str("command", cmd.String()).Str("path", p.URLPath()).Msg("request built")
	return ValidationResult{payload: p}, nil
}

// withDefaults fills in the defaults of absent arguments the command admits.
func withDefaults(schema *argschema.CommandSchema, args types.ArgumentSet) types.ArgumentSet {
	out := args.Clone()
	for name, spec := range schema.Effective(args) {
		if spec.Default == "" || spec.Level == argschema.Forbidden || out.Has(name) {
			continue
		}
		out[name] = types.StringValue(spec.Default)
	}
	return out
}

// resolveProperties returns the properties of a create command, or the new properties of an
// update command. Commands without properties get nil.
func resolveProperties(schema *argschema.CommandSchema, args types.ArgumentSet, existing types.PropertyMap) (types.PropertyMap, schemaerr.ValidationErrors) {
	eff := schema.Effective(args)
	if _, ok := eff[types.ArgSetProperty]; ok {
		return properties.Resolve(existing, args.Values(types.ArgSetProperty), args.Values(types.ArgRemoveProperty))
	}
	if _, ok := eff[types.ArgProperty]; ok {
		return properties.Parse(types.ArgProperty, args.Values(types.ArgProperty))
	}
	return nil, nil
}
