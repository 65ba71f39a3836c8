package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Parse_schemaDefinition(t *testing.T) {
	assert := assert.New(t)

	src := `schema { query: Query mutation: Mutation }`
	tree := New(src).Parse()
	assert.Empty(tree.Errors())

	typeDef, ok := tree.Document().Definitions()[0].AsSchemaDefinition()
	assert.True(ok)

	roots := typeDef.RootOperationTypeDefinitions()
	assert.Len(roots, 2)
	assert.Equal("query", roots[0].OperationType())
	assert.Equal("Query", roots[0].NamedType().Name().IDENT())
	assert.Equal("mutation", roots[1].OperationType())
	assert.Equal("Mutation", roots[1].NamedType().Name().IDENT())
}

func Test_Parse_objectTypeDefinitionWithDescriptionAndInterfaces(t *testing.T) {
	assert := assert.New(t)

	src := `"a character in the story"
type Character implements Node & Named {
  id: ID!
  name: String
}`
	tree := New(src).Parse()
	assert.Empty(tree.Errors())
	assert.Equal(src, tree.Text())

	typeDef, ok := tree.Document().Definitions()[0].AsTypeDefinition()
	assert.True(ok)
	obj, ok := typeDef.AsObjectTypeDefinition()
	assert.True(ok)

	assert.True(obj.Description().Present())
	assert.Equal("Character", obj.Name().IDENT())

	ifaces := obj.ImplementsInterfaces().NamedTypes()
	assert.Len(ifaces, 2)
	assert.Equal("Node", ifaces[0].Name().IDENT())
	assert.Equal("Named", ifaces[1].Name().IDENT())

	fields := obj.FieldsDefinition().Definitions()
	assert.Len(fields, 2)
	assert.Equal("id", fields[0].Name().IDENT())
	nonNull, ok := fields[0].Type().AsNonNullType()
	assert.True(ok)
	assert.Equal("ID", nonNull.NamedType().Name().IDENT())
	assert.Equal("name", fields[1].Name().IDENT())
}

func Test_Parse_fieldDefinitionWithArgumentsAndDescription(t *testing.T) {
	assert := assert.New(t)

	src := `type Query {
  hero(
    "the episode to look up"
    episode: Episode = NEWHOPE
  ): Character
}`
	tree := New(src).Parse()
	assert.Empty(tree.Errors())

	typeDef, _ := tree.Document().Definitions()[0].AsTypeDefinition()
	obj, _ := typeDef.AsObjectTypeDefinition()
	field := obj.FieldsDefinition().Definitions()[0]
	assert.Equal("hero", field.Name().IDENT())

	args := field.ArgumentsDefinition().Definitions()
	assert.Len(args, 1)
	assert.True(args[0].Description().Present())
	assert.Equal("episode", args[0].Name().IDENT())
	assert.True(args[0].DefaultValue().Present())
}

func Test_Parse_interfaceTypeDefinition(t *testing.T) {
	assert := assert.New(t)

	src := `interface Node { id: ID! }`
	tree := New(src).Parse()
	assert.Empty(tree.Errors())

	typeDef, _ := tree.Document().Definitions()[0].AsTypeDefinition()
	iface, ok := typeDef.AsInterfaceTypeDefinition()
	assert.True(ok)
	assert.Equal("Node", iface.Name().IDENT())
	assert.Len(iface.FieldsDefinition().Definitions(), 1)
}

func Test_Parse_unionTypeDefinition(t *testing.T) {
	assert := assert.New(t)

	src := `union SearchResult = Human | Droid | Starship`
	tree := New(src).Parse()
	assert.Empty(tree.Errors())

	typeDef, _ := tree.Document().Definitions()[0].AsTypeDefinition()
	union, ok := typeDef.AsUnionTypeDefinition()
	assert.True(ok)
	members := union.UnionMemberTypes().NamedTypes()
	assert.Len(members, 3)
	assert.Equal("Human", members[0].Name().IDENT())
	assert.Equal("Starship", members[2].Name().IDENT())
}

func Test_Parse_enumTypeDefinition(t *testing.T) {
	assert := assert.New(t)

	src := `enum Episode {
  NEWHOPE
  "the best one"
  EMPIRE
  JEDI
}`
	tree := New(src).Parse()
	assert.Empty(tree.Errors())

	typeDef, _ := tree.Document().Definitions()[0].AsTypeDefinition()
	enum, ok := typeDef.AsEnumTypeDefinition()
	assert.True(ok)
	values := enum.EnumValuesDefinition().Definitions()
	assert.Len(values, 3)
	assert.Equal("NEWHOPE", values[0].EnumValue().Text())
	assert.True(values[1].Description().Present())
	assert.Equal("EMPIRE", values[1].EnumValue().Text())
}

func Test_Parse_inputObjectTypeDefinition(t *testing.T) {
	assert := assert.New(t)

	src := `input ReviewInput { stars: Int! commentary: String }`
	tree := New(src).Parse()
	assert.Empty(tree.Errors())

	typeDef, _ := tree.Document().Definitions()[0].AsTypeDefinition()
	input, ok := typeDef.AsInputObjectTypeDefinition()
	assert.True(ok)
	assert.Equal("ReviewInput", input.Name().IDENT())
	assert.Len(input.InputFieldsDefinition().Definitions(), 2)
}

func Test_Parse_directiveDefinitionWithRepeatableAndLocations(t *testing.T) {
	assert := assert.New(t)

	src := `directive @cacheControl(maxAge: Int) repeatable on FIELD_DEFINITION | OBJECT`
	tree := New(src).Parse()
	assert.Empty(tree.Errors())

	dd, ok := tree.Document().Definitions()[0].AsDirectiveDefinition()
	assert.True(ok)
	assert.Equal("cacheControl", dd.Name().IDENT())
	assert.True(dd.Repeatable())

	locs := dd.DirectiveLocations().Locations()
	assert.Len(locs, 2)
	assert.Equal("FIELD_DEFINITION", locs[0].Name())
	assert.Equal("OBJECT", locs[1].Name())
}

func Test_Parse_scalarExtensionAddsDirectives(t *testing.T) {
	assert := assert.New(t)

	src := `scalar DateTime
extend scalar DateTime @tag(name: "temporal")`
	tree := New(src).Parse()
	assert.Empty(tree.Errors())
	assert.Len(tree.Document().Definitions(), 2)

	ext, ok := tree.Document().Definitions()[1].AsTypeExtension()
	assert.True(ok)
	_, ok = ext.AsScalarTypeExtension()
	assert.True(ok)
}

func Test_Parse_objectTypeExtensionAddsFields(t *testing.T) {
	assert := assert.New(t)

	src := `type Query { hero: Character }
extend type Query { villain: Character }`
	tree := New(src).Parse()
	assert.Empty(tree.Errors())

	ext, ok := tree.Document().Definitions()[1].AsTypeExtension()
	assert.True(ok)
	objExt, ok := ext.AsObjectTypeExtension()
	assert.True(ok)
	fields := objExt.FieldsDefinition().Definitions()
	assert.Len(fields, 1)
	assert.Equal("villain", fields[0].Name().IDENT())
}

func Test_Parse_unrecognizedExtensionKeywordRecovers(t *testing.T) {
	assert := assert.New(t)

	src := `extend bogus Foo`
	tree := New(src).Parse()
	assert.NotEmpty(tree.Errors())
	assert.Equal(src, tree.Text())
}
