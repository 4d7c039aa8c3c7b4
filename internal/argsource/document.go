package argsource

import (
	"strconv"
	"strings"

	"github.com/mugiliam/hatchcatalogctl/internal/catalogapi/apierrors"
	"github.com/mugiliam/hatchcatalogctl/pkg/types"
	"github.com/tidwall/gjson"
	"github.com/xeipuuv/gojsonschema"
	"sigs.k8s.io/yaml"
)

const (
	DocumentVersionV1 = "v1"
	maxDocumentSize   = 1 << 20
)

// documentSchema describes an argument document:
//
//	version: v1
//	command: catalogs create
//	arguments:
//	  name: sales
//	  allowed_location: [s3://a, s3://b]
const documentSchema = `{
  "type": "object",
  "required": ["version", "command"],
  "additionalProperties": false,
  "properties": {
    "version": {"type": "string"},
    "command": {"type": "string", "minLength": 1},
    "arguments": {
      "type": "object",
      "propertyNames": {"pattern": "^[a-z][a-z0-9_-]*$"},
      "additionalProperties": {
        "oneOf": [
          {"type": "string"},
          {"type": "number"},
          {"type": "boolean"},
          {"type": "array", "items": {"type": ["string", "number"]}}
        ]
      }
    }
  }
}`

var documentSchemaLoader = gojsonschema.NewStringLoader(documentSchema)

// ParseDocument reads an argument document in YAML or JSON. Arguments may be spelled with
// dashes or underscores. A boolean argument is a switch: true sets it and false leaves it out.
func ParseDocument(data []byte) (types.Command, types.ArgumentSet, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return types.Command{}, nil, ErrEmptyDocument
	}
	if len(data) > maxDocumentSize {
		return types.Command{}, nil, ErrDocumentTooLarge
	}
	doc, err := yaml.YAMLToJSON(data)
	if err != nil {
		return types.Command{}, nil, ErrInvalidDocument.Err(err)
	}
	if !gjson.ValidBytes(doc) || !gjson.ParseBytes(doc).IsObject() {
		return types.Command{}, nil, ErrInvalidDocument.Msg("argument document must be an object")
	}
	if v := gjson.GetBytes(doc, "version"); v.Exists() && v.String() != DocumentVersionV1 {
		return types.Command{}, nil, ErrInvalidVersion.Msg("unsupported argument document version " + strconv.Quote(v.String()))
	}

	result, err := gojsonschema.Validate(documentSchemaLoader, gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return types.Command{}, nil, ErrInvalidDocument.Err(err)
	}
	if !result.Valid() {
		var msgs []string
		for _, re := range result.Errors() {
			msgs = append(msgs, re.Field()+": "+re.Description())
		}
		return types.Command{}, nil, ErrInvalidDocument.Msg(strings.Join(msgs, "; "))
	}

	cmd, err := ParseCommand(gjson.GetBytes(doc, "command").String())
	if err != nil {
		return types.Command{}, nil, err
	}

	args := make(types.ArgumentSet)
	gjson.GetBytes(doc, "arguments").ForEach(func(key, value gjson.Result) bool {
		name := ArgName(key.String())
		switch {
		case value.IsArray():
			var vs []string
			for _, item := range value.Array() {
				vs = append(vs, item.String())
			}
			args[name] = types.ListValue(vs...)
		case value.IsBool():
			if value.Bool() {
				args[name] = types.BoolValue()
			}
		default:
			args[name] = types.StringValue(value.String())
		}
		return true
	})
	return cmd, args, nil
}

// ParseCommand splits "family subcommand [action]". Whether the words are known is left to the
// resolver, which reports them as violations.
func ParseCommand(s string) (types.Command, error) {
	words := strings.Fields(s)
	if len(words) < 2 || len(words) > 3 {
		return types.Command{}, apierrors.ErrUnknownCommand.Msg("expected \"family subcommand [action]\", got " + strconv.Quote(s))
	}
	cmd := types.NewCommand(types.ResourceFamily(words[0]), types.Subcommand(words[1]))
	if len(words) == 3 {
		cmd.Action = types.Action(words[2])
	}
	return cmd, nil
}
