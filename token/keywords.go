package token

// keywords maps reserved words, built-in type names, and word literals to
// their token types. Built once; lexers share it.
var keywords = map[string]TokenType{
	"as":       As,
	"atomic":   Atomic,
	"bit":      Bit,
	"bool":     Bool,
	"break":    Break,
	"builder":  Builder,
	"case":     Case,
	"class":    Class,
	"const":    Const,
	"continue": Continue,
	"default":  Default,
	"do":       Do,
	"elif":     Elif,
	"else":     Else,
	"enum":     Enum,
	"fin":      Fin,
	"for":      For,
	"func":     Func,
	"if":       If,
	"import":   Import,
	"in":       In,
	"internal": Internal,
	"let":      Let,
	"loop":     Loop,
	"mod":      Mod,
	"new":      New,
	"priv":     Priv,
	"prot":     Prot,
	"pub":      Pub,
	"ret":      Ret,
	"rev":      Rev,
	"self":     Self,
	"step":     Step,
	"struct":   Struct,
	"super":    Super,
	"switch":   Switch,
	"this":     This,
	"var":      Var,
	"while":    While,

	// built-in types
	"byte": Byte,
	"f16":  F16,
	"f32":  F32,
	"f64":  F64,
	"i8":   I8,
	"i16":  I16,
	"i32":  I32,
	"i64":  I64,
	"u8":   U8,
	"u16":  U16,
	"u32":  U32,
	"u64":  U64,

	// word literals
	"true":  True,
	"false": False,
	"null":  Null,
}

// Lookup reports the reserved TokenType for text, if any. Matching is exact
// and case-sensitive; callers must pass a fully-scanned identifier, never a
// prefix.
func Lookup(text string) (TokenType, bool) {
	t, ok := keywords[text]
	return t, ok
}
