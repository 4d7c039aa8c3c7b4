package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/mugiliam/hatchcatalogctl/internal/argsource"
	"github.com/mugiliam/hatchcatalogctl/internal/catalogapi"
	"github.com/mugiliam/hatchcatalogctl/internal/catalogapi/requestmanager"
	schemaerr "github.com/mugiliam/hatchcatalogctl/internal/catalogapi/schema/errors"
	"github.com/mugiliam/hatchcatalogctl/internal/catalogapi/vocabulary"
	"github.com/mugiliam/hatchcatalogctl/internal/common"
	"github.com/mugiliam/hatchcatalogctl/internal/config"
	"github.com/mugiliam/hatchcatalogctl/internal/transport"
	"github.com/mugiliam/hatchcatalogctl/internal/types"
	pkgtypes "github.com/mugiliam/hatchcatalogctl/pkg/types"
	"github.com/rs/zerolog/log"
)

// session is the per-invocation state derived from the global flags.
type session struct {
	ctx        context.Context
	cfg        *config.Config
	configPath string
	conn       config.Connection
	format     transport.Format
}

func newSession(ctx context.Context, e *env, opts *globalOptions, needConnection bool) (*session, error) {
	s := &session{configPath: config.Path(opts.configPath, e.getenv)}
	cfg, err := config.LoadFrom(s.configPath)
	if err != nil {
		return nil, err
	}
	s.cfg = cfg

	level := opts.logLevel
	if level == "" {
		level = cfg.LogLevel
	}
	s.ctx = requestContext(ctx, newLogger(e.stderr, level))

	if s.format, err = transport.ParseFormat(opts.output); err != nil {
		return nil, err
	}

	if needConnection {
		s.conn, err = cfg.Connection(config.Overrides{
			Profile:      opts.profile,
			Host:         opts.host,
			Port:         opts.port,
			ClientID:     opts.clientID,
			ClientSecret: opts.clientSecret,
		}, e.getenv)
		if err != nil {
			return nil, err
		}
		s.ctx = common.SetProfileInContext(s.ctx, types.ProfileName(s.conn.Profile))
		log.Ctx(s.ctx).Debug().Str("connection", s.conn.String()).Msg("resolved connection")
	}
	log.Ctx(s.ctx).Debug().Str("config", s.configPath).Msg("loaded config")
	return s, nil
}

func (s *session) sender(stdout io.Writer) catalogapi.Transport {
	printer := transport.NewPrinter(stdout, s.format, s.conn.BaseURL())
	return transport.NewRouter(printer, config.NewProfileStore(s.configPath, s.cfg))
}

// run resolves one command and hands the request to the transport.
func run(ctx context.Context, e *env, opts *globalOptions, command pkgtypes.Command, args pkgtypes.ArgumentSet) error {
	s, err := newSession(ctx, e, opts, command.Family != pkgtypes.FamilyProfiles)
	if err != nil {
		return err
	}

	var ropts []requestmanager.Options
	if opts.currentProperties != "" && (args.Has(pkgtypes.ArgSetProperty) || args.Has(pkgtypes.ArgRemoveProperty)) {
		var fetcher catalogapi.PropertyFetcher = snapshotFetcher{path: opts.currentProperties}
		props, err := fetcher.FetchProperties(s.ctx, command, args)
		if err != nil {
			return err
		}
		ropts = append(ropts, requestmanager.WithExistingProperties(props))
	}

	res, appErr := catalogapi.NewResolver().Resolve(s.ctx, command, args, ropts...)
	if appErr != nil {
		return appErr
	}
	if !res.Valid() {
		return res.Err()
	}
	return s.sender(e.stdout).Send(s.ctx, res.Payload())
}

// printViolations writes one line per violation, naming arguments by their flags.
func printViolations(w io.Writer, ves schemaerr.ValidationErrors) {
	for _, ve := range ves {
		field := ve.Field
		if vocabulary.IsKnownArgument(field) {
			field = "--" + argsource.FlagName(field)
		}
		if field == "" {
			fmt.Fprintf(w, "  %s\n", ve.ErrStr)
			continue
		}
		fmt.Fprintf(w, "  %s: %s\n", field, ve.ErrStr)
	}
}

func validationErrors(err error) (schemaerr.ValidationErrors, bool) {
	var ves schemaerr.ValidationErrors
	if errors.As(err, &ves) {
		return ves, true
	}
	return nil, false
}
