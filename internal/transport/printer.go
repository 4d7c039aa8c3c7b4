// Package transport delivers built requests. Nothing here talks to the catalog service: requests
// are printed for inspection, and profile requests are applied to the local profile store.
package transport

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/mugiliam/hatchcatalogctl/internal/catalogapi/requestmanager"
	"github.com/mugiliam/hatchcatalogctl/internal/common"
	"github.com/mugiliam/hatchcatalogctl/pkg/api"
	"github.com/rs/zerolog/log"
	"sigs.k8s.io/yaml"
)

type Format string

const (
	FormatAuto Format = ""
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts "", "auto", "json" and "yaml".
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatAuto, FormatJSON, FormatYAML:
		return f, nil
	case "auto":
		return FormatAuto, nil
	}
	return FormatAuto, ErrInvalidFormat.Msg("invalid output format " + s + "; expected json or yaml")
}

// Printer writes requests as envelopes instead of sending them.
type Printer struct {
	out     io.Writer
	format  Format
	baseURL string
}

// NewPrinter returns a printer writing to out. With FormatAuto it writes YAML to a terminal and
// JSON otherwise. baseURL prefixes the endpoint shown for service requests.
func NewPrinter(out io.Writer, format Format, baseURL string) *Printer {
	if format == FormatAuto {
		format = FormatJSON
		if f, ok := out.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
			format = FormatYAML
		}
	}
	return &Printer{out: out, format: format, baseURL: baseURL}
}

func (p *Printer) Format() Format {
	return p.format
}

func (p *Printer) Send(ctx context.Context, payload *requestmanager.RequestPayload) error {
	env, err := api.NewRequestEnvelope(requestId(ctx), payload)
	if err != nil {
		return ErrTransport.Err(err)
	}
	if payload.Target() != requestmanager.TargetProfileStore {
		env.Endpoint = p.baseURL + payload.URLPath()
		env.Profile = string(common.ProfileFromContext(ctx))
	}
	log.Ctx(ctx).Debug().Str("command", payload.Command().String()).Str("profile", env.Profile).Str("fingerprint", env.Fingerprint[:16]).Msg("printing request")
	return p.Print(env)
}

// Print writes v in the printer's format.
func (p *Printer) Print(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return ErrOutput.Err(err)
	}
	if p.format == FormatYAML {
		if b, err = yaml.JSONToYAML(b); err != nil {
			return ErrOutput.Err(err)
		}
	} else {
		b = append(b, '\n')
	}
	if _, err := p.out.Write(b); err != nil {
		return ErrOutput.Err(err)
	}
	return nil
}

func requestId(ctx context.Context) string {
	id := common.RequestIdFromContext(ctx)
	if id.IsNil() {
		return ""
	}
	return id.String()
}
