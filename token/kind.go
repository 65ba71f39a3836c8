// Package token defines the terminal and nonterminal tags shared by every
// other package in this module: the lexer emits terminal kinds, the parser
// opens nodes of nonterminal kinds, and the green tree is typed by this same
// flat enumeration (spec.md §3, SyntaxKind).
package token

// Kind is the closed enumeration unifying every terminal and nonterminal tag
// in the grammar. It is assigned small integer values and is the wire
// contract consumers of a SyntaxTree depend on: new kinds may be appended,
// but existing ones must never be renumbered or removed.
type Kind uint16

const (
	// ERROR is the zero value so an uninitialized Kind is never confused with
	// a real terminal or nonterminal. It is also used as a node kind when the
	// parser must wrap a run of unexpected tokens during recovery, and as the
	// token kind the lexer gives bytes that form no valid token.
	ERROR Kind = iota

	// EOF marks the synthetic end-of-input token. It is never attached to the
	// tree; it exists only so the driver has something to peek at forever.
	EOF

	// --- trivia -------------------------------------------------------
	WHITESPACE
	COMMENT

	// --- identifiers and literals --------------------------------------
	IDENT
	INT
	FLOAT
	STRING
	BLOCK_STRING

	// --- punctuators ----------------------------------------------------
	BANG       // !
	DOLLAR     // $
	AMP        // &
	LPAREN     // (
	RPAREN     // )
	SPREAD     // ...
	COLON      // :
	EQUALS     // =
	AT         // @
	LBRACKET   // [
	RBRACKET   // ]
	LBRACE     // {
	PIPE       // |
	RBRACE     // }

	// --- contextual keywords --------------------------------------------
	// These are only ever assigned to a token by the parser (bump classifies
	// an IDENT as one of these); the lexer always emits IDENT (spec.md §4.1).
	QUERY_KW
	MUTATION_KW
	SUBSCRIPTION_KW
	FRAGMENT_KW
	ON_KW
	SCHEMA_KW
	SCALAR_KW
	TYPE_KW
	INTERFACE_KW
	UNION_KW
	ENUM_KW
	INPUT_KW
	EXTEND_KW
	IMPLEMENTS_KW
	DIRECTIVE_KW
	TRUE_KW
	FALSE_KW
	NULL_KW

	// --- directive location names (SPEC_FULL §12.2) ----------------------
	QUERY_LOC
	MUTATION_LOC
	SUBSCRIPTION_LOC
	FIELD_LOC
	FRAGMENT_DEFINITION_LOC
	FRAGMENT_SPREAD_LOC
	INLINE_FRAGMENT_LOC
	VARIABLE_DEFINITION_LOC
	SCHEMA_LOC
	SCALAR_LOC
	OBJECT_LOC
	FIELD_DEFINITION_LOC
	ARGUMENT_DEFINITION_LOC
	INTERFACE_LOC
	UNION_LOC
	ENUM_LOC
	ENUM_VALUE_LOC
	INPUT_OBJECT_LOC
	INPUT_FIELD_DEFINITION_LOC

	// --- nonterminals: executable ----------------------------------------
	DOCUMENT
	OPERATION_DEFINITION
	OPERATION_TYPE
	VARIABLE_DEFINITIONS
	VARIABLE_DEFINITION
	VARIABLE
	DEFAULT_VALUE
	SELECTION_SET
	FIELD
	ALIAS
	ARGUMENTS
	ARGUMENT
	FRAGMENT_SPREAD
	INLINE_FRAGMENT
	FRAGMENT_DEFINITION
	FRAGMENT_NAME
	TYPE_CONDITION
	DIRECTIVES
	DIRECTIVE
	NAME

	// --- nonterminals: values ---------------------------------------------
	INT_VALUE
	FLOAT_VALUE
	STRING_VALUE
	BOOLEAN_VALUE
	NULL_VALUE
	ENUM_VALUE
	LIST_VALUE
	OBJECT_VALUE
	OBJECT_FIELD

	// --- nonterminals: types -----------------------------------------------
	NAMED_TYPE
	LIST_TYPE
	NON_NULL_TYPE

	// --- nonterminals: type system ------------------------------------------
	DESCRIPTION
	SCHEMA_DEFINITION
	ROOT_OPERATION_TYPE_DEFINITION
	SCALAR_TYPE_DEFINITION
	OBJECT_TYPE_DEFINITION
	IMPLEMENTS_INTERFACES
	FIELDS_DEFINITION
	FIELD_DEFINITION
	ARGUMENTS_DEFINITION
	INPUT_VALUE_DEFINITION
	INTERFACE_TYPE_DEFINITION
	UNION_TYPE_DEFINITION
	UNION_MEMBER_TYPES
	ENUM_TYPE_DEFINITION
	ENUM_VALUES_DEFINITION
	ENUM_VALUE_DEFINITION
	INPUT_OBJECT_TYPE_DEFINITION
	INPUT_FIELDS_DEFINITION
	DIRECTIVE_DEFINITION
	DIRECTIVE_LOCATIONS
	DIRECTIVE_LOCATION

	// --- nonterminals: extensions --------------------------------------------
	SCHEMA_EXTENSION
	SCALAR_TYPE_EXTENSION
	OBJECT_TYPE_EXTENSION
	INTERFACE_TYPE_EXTENSION
	UNION_TYPE_EXTENSION
	ENUM_TYPE_EXTENSION
	INPUT_OBJECT_TYPE_EXTENSION

	kindCount
)

var names = [kindCount]string{
	ERROR:           "ERROR",
	EOF:             "EOF",
	WHITESPACE:      "WHITESPACE",
	COMMENT:         "COMMENT",
	IDENT:           "IDENT",
	INT:             "INT",
	FLOAT:           "FLOAT",
	STRING:          "STRING",
	BLOCK_STRING:    "BLOCK_STRING",
	BANG:            "BANG",
	DOLLAR:          "DOLLAR",
	AMP:             "AMP",
	LPAREN:          "LPAREN",
	RPAREN:          "RPAREN",
	SPREAD:          "SPREAD",
	COLON:           "COLON",
	EQUALS:          "EQUALS",
	AT:              "AT",
	LBRACKET:        "LBRACKET",
	RBRACKET:        "RBRACKET",
	LBRACE:          "LBRACE",
	PIPE:            "PIPE",
	RBRACE:          "RBRACE",

	QUERY_KW:        "query",
	MUTATION_KW:     "mutation",
	SUBSCRIPTION_KW: "subscription",
	FRAGMENT_KW:     "fragment",
	ON_KW:           "on",
	SCHEMA_KW:       "schema",
	SCALAR_KW:       "scalar",
	TYPE_KW:         "type",
	INTERFACE_KW:    "interface",
	UNION_KW:        "union",
	ENUM_KW:         "enum",
	INPUT_KW:        "input",
	EXTEND_KW:       "extend",
	IMPLEMENTS_KW:   "implements",
	DIRECTIVE_KW:    "directive",
	TRUE_KW:         "true",
	FALSE_KW:        "false",
	NULL_KW:         "null",

	QUERY_LOC:                "QUERY",
	MUTATION_LOC:              "MUTATION",
	SUBSCRIPTION_LOC:          "SUBSCRIPTION",
	FIELD_LOC:                 "FIELD",
	FRAGMENT_DEFINITION_LOC:   "FRAGMENT_DEFINITION",
	FRAGMENT_SPREAD_LOC:       "FRAGMENT_SPREAD",
	INLINE_FRAGMENT_LOC:       "INLINE_FRAGMENT",
	VARIABLE_DEFINITION_LOC:   "VARIABLE_DEFINITION",
	SCHEMA_LOC:                "SCHEMA",
	SCALAR_LOC:                "SCALAR",
	OBJECT_LOC:                "OBJECT",
	FIELD_DEFINITION_LOC:      "FIELD_DEFINITION",
	ARGUMENT_DEFINITION_LOC:   "ARGUMENT_DEFINITION",
	INTERFACE_LOC:             "INTERFACE",
	UNION_LOC:                 "UNION",
	ENUM_LOC:                  "ENUM",
	ENUM_VALUE_LOC:            "ENUM_VALUE",
	INPUT_OBJECT_LOC:          "INPUT_OBJECT",
	INPUT_FIELD_DEFINITION_LOC: "INPUT_FIELD_DEFINITION",

	DOCUMENT:              "DOCUMENT",
	OPERATION_DEFINITION:  "OPERATION_DEFINITION",
	OPERATION_TYPE:        "OPERATION_TYPE",
	VARIABLE_DEFINITIONS:  "VARIABLE_DEFINITIONS",
	VARIABLE_DEFINITION:   "VARIABLE_DEFINITION",
	VARIABLE:              "VARIABLE",
	DEFAULT_VALUE:         "DEFAULT_VALUE",
	SELECTION_SET:         "SELECTION_SET",
	FIELD:                 "FIELD",
	ALIAS:                 "ALIAS",
	ARGUMENTS:             "ARGUMENTS",
	ARGUMENT:              "ARGUMENT",
	FRAGMENT_SPREAD:       "FRAGMENT_SPREAD",
	INLINE_FRAGMENT:       "INLINE_FRAGMENT",
	FRAGMENT_DEFINITION:   "FRAGMENT_DEFINITION",
	FRAGMENT_NAME:         "FRAGMENT_NAME",
	TYPE_CONDITION:        "TYPE_CONDITION",
	DIRECTIVES:            "DIRECTIVES",
	DIRECTIVE:             "DIRECTIVE",
	NAME:                  "NAME",

	INT_VALUE:     "INT_VALUE",
	FLOAT_VALUE:   "FLOAT_VALUE",
	STRING_VALUE:  "STRING_VALUE",
	BOOLEAN_VALUE: "BOOLEAN_VALUE",
	NULL_VALUE:    "NULL_VALUE",
	ENUM_VALUE:    "ENUM_VALUE",
	LIST_VALUE:    "LIST_VALUE",
	OBJECT_VALUE:  "OBJECT_VALUE",
	OBJECT_FIELD:  "OBJECT_FIELD",

	NAMED_TYPE:    "NAMED_TYPE",
	LIST_TYPE:     "LIST_TYPE",
	NON_NULL_TYPE: "NON_NULL_TYPE",

	DESCRIPTION:                    "DESCRIPTION",
	SCHEMA_DEFINITION:              "SCHEMA_DEFINITION",
	ROOT_OPERATION_TYPE_DEFINITION: "ROOT_OPERATION_TYPE_DEFINITION",
	SCALAR_TYPE_DEFINITION:         "SCALAR_TYPE_DEFINITION",
	OBJECT_TYPE_DEFINITION:         "OBJECT_TYPE_DEFINITION",
	IMPLEMENTS_INTERFACES:          "IMPLEMENTS_INTERFACES",
	FIELDS_DEFINITION:              "FIELDS_DEFINITION",
	FIELD_DEFINITION:               "FIELD_DEFINITION",
	ARGUMENTS_DEFINITION:           "ARGUMENTS_DEFINITION",
	INPUT_VALUE_DEFINITION:         "INPUT_VALUE_DEFINITION",
	INTERFACE_TYPE_DEFINITION:      "INTERFACE_TYPE_DEFINITION",
	UNION_TYPE_DEFINITION:          "UNION_TYPE_DEFINITION",
	UNION_MEMBER_TYPES:             "UNION_MEMBER_TYPES",
	ENUM_TYPE_DEFINITION:           "ENUM_TYPE_DEFINITION",
	ENUM_VALUES_DEFINITION:         "ENUM_VALUES_DEFINITION",
	ENUM_VALUE_DEFINITION:          "ENUM_VALUE_DEFINITION",
	INPUT_OBJECT_TYPE_DEFINITION:   "INPUT_OBJECT_TYPE_DEFINITION",
	INPUT_FIELDS_DEFINITION:        "INPUT_FIELDS_DEFINITION",
	DIRECTIVE_DEFINITION:           "DIRECTIVE_DEFINITION",
	DIRECTIVE_LOCATIONS:            "DIRECTIVE_LOCATIONS",
	DIRECTIVE_LOCATION:             "DIRECTIVE_LOCATION",

	SCHEMA_EXTENSION:             "SCHEMA_EXTENSION",
	SCALAR_TYPE_EXTENSION:        "SCALAR_TYPE_EXTENSION",
	OBJECT_TYPE_EXTENSION:        "OBJECT_TYPE_EXTENSION",
	INTERFACE_TYPE_EXTENSION:     "INTERFACE_TYPE_EXTENSION",
	UNION_TYPE_EXTENSION:         "UNION_TYPE_EXTENSION",
	ENUM_TYPE_EXTENSION:          "ENUM_TYPE_EXTENSION",
	INPUT_OBJECT_TYPE_EXTENSION:  "INPUT_OBJECT_TYPE_EXTENSION",
}

// String gives the kind's canonical name, used in tree dumps and error
// messages. Unknown values (shouldn't occur outside of memory corruption)
// render as a numeric fallback rather than panicking.
func (k Kind) String() string {
	if int(k) < len(names) && names[k] != "" {
		return names[k]
	}
	return "Kind(" + itoa(uint(k)) + ")"
}

func itoa(n uint) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}

// IsTrivia reports whether kind is whitespace or a comment: preserved in the
// tree but skipped by every grammar production's lookahead (spec.md §4.1,
// GLOSSARY "Trivia").
func (k Kind) IsTrivia() bool {
	return k == WHITESPACE || k == COMMENT
}

// IsTerminal reports whether kind names a token the lexer or parser can bump,
// as opposed to an internal node kind opened with start_node. ERROR reports
// false because it is the recovery node kind, although the lexer also emits
// ERROR tokens for bytes that form no valid token.
func (k Kind) IsTerminal() bool {
	switch {
	case k == EOF:
		return true
	case k >= WHITESPACE && k <= RBRACE:
		return true
	case k >= QUERY_KW && k <= INPUT_FIELD_DEFINITION_LOC:
		return true
	default:
		return false
	}
}
