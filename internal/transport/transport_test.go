package transport

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/mugiliam/hatchcatalogctl/internal/catalogapi/requestmanager"
	"github.com/mugiliam/hatchcatalogctl/internal/common"
	"github.com/mugiliam/hatchcatalogctl/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"sigs.k8s.io/yaml"
)

func namespaceGet(t *testing.T) *requestmanager.RequestPayload {
	p, err := requestmanager.NewRequestPayload(requestmanager.Request{
		Command: types.NewCommand(types.FamilyNamespaces, types.SubcommandGet),
		Target:  requestmanager.TargetCatalog,
		Method:  http.MethodGet,
		Path:    []string{"sales", "namespaces", "a\x1fb"},
	})
	require.NoError(t, err)
	return p
}

func profileList(t *testing.T) *requestmanager.RequestPayload {
	p, err := requestmanager.NewRequestPayload(requestmanager.Request{
		Command: types.NewCommand(types.FamilyProfiles, types.SubcommandList),
		Target:  requestmanager.TargetProfileStore,
		Method:  http.MethodGet,
		Path:    []string{"profiles"},
	})
	require.NoError(t, err)
	return p
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": FormatAuto, "auto": FormatAuto, "JSON": FormatJSON, " yaml ": FormatYAML} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseFormat("table")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestPrinter_JSON(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatAuto, "http://localhost:8181")
	assert.Equal(t, FormatJSON, p.Format(), "a buffer is not a terminal")

	ctx := common.NewRequestContext(context.Background())
	ctx = common.SetProfileInContext(ctx, "dev")
	require.NoError(t, p.Send(ctx, namespaceGet(t)))

	out := buf.Bytes()
	assert.Equal(t, "http://localhost:8181/api/catalog/v1/sales/namespaces/a%1Fb", gjson.GetBytes(out, "endpoint").String())
	assert.Equal(t, common.RequestIdFromContext(ctx).String(), gjson.GetBytes(out, "requestId").String())
	assert.Equal(t, "dev", gjson.GetBytes(out, "profile").String())
	assert.Equal(t, "GET", gjson.GetBytes(out, "request.method").String())
	assert.Len(t, gjson.GetBytes(out, "fingerprint").String(), 128)
}

func TestPrinter_YAML(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatYAML, "http://localhost:8181")
	require.NoError(t, p.Send(context.Background(), namespaceGet(t)))

	var out map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, "1.0", out["version"])
	assert.NotContains(t, out, "requestId")
	assert.NotContains(t, out, "profile")
}

type fakeProfiles struct {
	result any
	err    error
	calls  int
}

func (f *fakeProfiles) Apply(ctx context.Context, p *requestmanager.RequestPayload) (any, error) {
	f.calls++
	return f.result, f.err
}

func TestRouter(t *testing.T) {
	ctx := context.Background()

	var buf bytes.Buffer
	profiles := &fakeProfiles{result: []string{"dev"}}
	r := NewRouter(NewPrinter(&buf, FormatJSON, ""), profiles)

	require.NoError(t, r.Send(ctx, profileList(t)))
	assert.Equal(t, 1, profiles.calls)
	assert.JSONEq(t, `["dev"]`, buf.String())

	buf.Reset()
	require.NoError(t, r.Send(ctx, namespaceGet(t)))
	assert.Equal(t, 1, profiles.calls, "service requests are not applied locally")
	assert.True(t, gjson.Valid(buf.String()))

	buf.Reset()
	profiles.result = nil
	require.NoError(t, r.Send(ctx, profileList(t)))
	assert.Empty(t, buf.String())

	boom := errors.New("boom")
	profiles.err = boom
	assert.ErrorIs(t, r.Send(ctx, profileList(t)), boom)
}
