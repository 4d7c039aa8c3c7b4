package argschema

import (
	"fmt"

	schemaerr "github.com/mugiliam/hatchcatalogctl/internal/catalogapi/schema/errors"
	"github.com/mugiliam/hatchcatalogctl/internal/catalogapi/vocabulary"
	"github.com/mugiliam/hatchcatalogctl/pkg/types"
)

var registry = make(map[types.Command]*CommandSchema)

// Register adds s to the registry. Registration happens at init and the registry is read-only
// afterwards.
func Register(s *CommandSchema) error {
	if ves := vocabulary.CheckCommand(s.Command); ves != nil {
		return fmt.Errorf("schema for %s: %w", s.Command, ves)
	}
	if _, exists := registry[s.Command]; exists {
		return fmt.Errorf("schema for %s registered twice", s.Command)
	}
	registry[s.Command] = s
	return nil
}

func MustRegister(cmd types.Command, args []ArgSpec, opts ...SchemaOption) {
	s, err := NewCommandSchema(cmd, args, opts...)
	if err != nil {
		panic(err)
	}
	if err := Register(s); err != nil {
		panic(err)
	}
}

func Lookup(cmd types.Command) (*CommandSchema, bool) {
	s, ok := registry[cmd]
	return s, ok
}

// Validate checks the command and then its arguments. All violations are returned together.
func Validate(cmd types.Command, args types.ArgumentSet) schemaerr.ValidationErrors {
	if ves := vocabulary.CheckCommand(cmd); ves != nil {
		return ves
	}
	s, ok := Lookup(cmd)
	if !ok {
		return schemaerr.ValidationErrors{schemaerr.ErrUnknownVocabulary(vocabulary.FieldCommand, cmd.String())}
	}
	return s.Validate(args)
}
