package token

// TokenType identifies the lexical kind of a token. The set is closed:
// every switch over it is expected to be exhaustive.
type TokenType uint16

const (
	// Literals.
	Char TokenType = iota
	False
	Identifier
	Null
	Number
	String
	True

	// Keywords.
	As
	Atomic
	Bit
	Bool
	Break
	Builder
	Case
	Class
	Const
	Continue
	Default
	Do
	Elif
	Else
	Enum
	Fin
	For
	Func
	If
	Import
	In
	Internal
	Let
	Loop
	Mod
	New
	Priv
	Prot
	Pub
	Ret
	Rev
	Self
	Step
	Struct
	Super
	Switch
	This
	Var
	While

	// Built-in types.
	Byte
	F16
	F32
	F64
	I8
	I16
	I32
	I64
	U8
	U16
	U32
	U64

	// Operators.
	And
	Arrow
	DoubleEqual
	Equal
	Greater
	GreaterEqual
	Less
	LessEqual
	Minus
	Not
	NotEqual
	Or
	Percent
	Plus
	Range
	RangeInclusive
	Slash
	Star

	// Punctuation.
	Colon
	Comma
	DoubleColon
	Dot
	LBrace
	LBracket
	LParen
	Question
	RBrace
	RBracket
	RParen
	Semicolon

	// Sentinels.
	EndOfFile
	Invalid
)

// TokenCategory is the coarse classification derived from a TokenType.
type TokenCategory uint8

const (
	CategoryLiteral TokenCategory = iota
	CategoryKeyword
	CategoryOperator
	CategoryPunctuation
	CategoryIdentifier
	CategoryWhitespace
	CategoryComment
	CategoryError
	CategoryEof
)

// Classify maps a TokenType to its category. Total over the closed set;
// Invalid always classifies as CategoryError.
func Classify(t TokenType) TokenCategory {
	switch t {
	case Char, False, Null, Number, String, True:
		return CategoryLiteral
	case As, Atomic, Bit, Bool, Break, Builder, Case, Class, Const, Continue,
		Default, Do, Elif, Else, Enum, Fin, For, Func, If, Import, In,
		Internal, Let, Loop, Mod, New, Priv, Prot, Pub, Ret, Rev, Self,
		Step, Struct, Super, Switch, This, Var, While:
		return CategoryKeyword
	// Built-in type names are reserved words, so they count as keywords.
	case Byte, F16, F32, F64, I8, I16, I32, I64, U8, U16, U32, U64:
		return CategoryKeyword
	case And, Arrow, DoubleEqual, Equal, Greater, GreaterEqual, Less,
		LessEqual, Minus, Not, NotEqual, Or, Percent, Plus, Range,
		RangeInclusive, Slash, Star:
		return CategoryOperator
	case Colon, Comma, DoubleColon, Dot, LBrace, LBracket, LParen, Question,
		RBrace, RBracket, RParen, Semicolon:
		return CategoryPunctuation
	case Identifier:
		return CategoryIdentifier
	case EndOfFile:
		return CategoryEof
	case Invalid:
		return CategoryError
	}
	return CategoryError
}

// typeNames holds the machine-stable name of every TokenType, used by
// diagnostics and snapshot tests.
var typeNames = [...]string{
	Char:           "Char",
	False:          "False",
	Identifier:     "Identifier",
	Null:           "Null",
	Number:         "Number",
	String:         "String",
	True:           "True",
	As:             "As",
	Atomic:         "Atomic",
	Bit:            "Bit",
	Bool:           "Bool",
	Break:          "Break",
	Builder:        "Builder",
	Case:           "Case",
	Class:          "Class",
	Const:          "Const",
	Continue:       "Continue",
	Default:        "Default",
	Do:             "Do",
	Elif:           "Elif",
	Else:           "Else",
	Enum:           "Enum",
	Fin:            "Fin",
	For:            "For",
	Func:           "Func",
	If:             "If",
	Import:         "Import",
	In:             "In",
	Internal:       "Internal",
	Let:            "Let",
	Loop:           "Loop",
	Mod:            "Mod",
	New:            "New",
	Priv:           "Priv",
	Prot:           "Prot",
	Pub:            "Pub",
	Ret:            "Ret",
	Rev:            "Rev",
	Self:           "Self",
	Step:           "Step",
	Struct:         "Struct",
	Super:          "Super",
	Switch:         "Switch",
	This:           "This",
	Var:            "Var",
	While:          "While",
	Byte:           "Byte",
	F16:            "F16",
	F32:            "F32",
	F64:            "F64",
	I8:             "I8",
	I16:            "I16",
	I32:            "I32",
	I64:            "I64",
	U8:             "U8",
	U16:            "U16",
	U32:            "U32",
	U64:            "U64",
	And:            "And",
	Arrow:          "Arrow",
	DoubleEqual:    "DoubleEqual",
	Equal:          "Equal",
	Greater:        "Greater",
	GreaterEqual:   "GreaterEqual",
	Less:           "Less",
	LessEqual:      "LessEqual",
	Minus:          "Minus",
	Not:            "Not",
	NotEqual:       "NotEqual",
	Or:             "Or",
	Percent:        "Percent",
	Plus:           "Plus",
	Range:          "Range",
	RangeInclusive: "RangeInclusive",
	Slash:          "Slash",
	Star:           "Star",
	Colon:          "Colon",
	Comma:          "Comma",
	DoubleColon:    "DoubleColon",
	Dot:            "Dot",
	LBrace:         "LBrace",
	LBracket:       "LBracket",
	LParen:         "LParen",
	Question:       "Question",
	RBrace:         "RBrace",
	RBracket:       "RBracket",
	RParen:         "RParen",
	Semicolon:      "Semicolon",
	EndOfFile:      "EndOfFile",
	Invalid:        "Invalid",
}

func (t TokenType) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "Unknown"
}

var categoryNames = [...]string{
	CategoryLiteral:     "Literal",
	CategoryKeyword:     "Keyword",
	CategoryOperator:    "Operator",
	CategoryPunctuation: "Punctuation",
	CategoryIdentifier:  "Identifier",
	CategoryWhitespace:  "Whitespace",
	CategoryComment:     "Comment",
	CategoryError:       "Error",
	CategoryEof:         "Eof",
}

func (c TokenCategory) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "Unknown"
}
