package symtab

// Terminals is the fixed, documented order of the terminal type set. This
// order is significant: it is the order operator overloads are registered
// in, and per the type checker's tie-break rule (§4.6), overload
// resolution scans an overload list from highest index to 0 — so this
// order also governs which built-in overload wins when more than one
// terminal would otherwise match.
var Terminals = []Terminal{
	Void, Bool,
	U8, U16, U32, U64,
	I8, I16, I32, I64,
	F16, F32, F64,
}

var integerTerminals = filterTerminals(Terminal.IsInteger)
var numericTerminals = filterTerminals(Terminal.IsNumeric)
var allTerminals = Terminals[1:] // every terminal except void

func filterTerminals(pred func(Terminal) bool) []Terminal {
	out := make([]Terminal, 0, len(Terminals))
	for _, t := range Terminals {
		if pred(t) {
			out = append(out, t)
		}
	}
	return out
}

// OpKind differentiates unary from binary built-in operators.
type OpKind int

const (
	OpUnary OpKind = iota
	OpBinary
)

// OpEntry describes one built-in operator lexeme: its arity and the set of
// terminals it is overloaded across. Result is nil when the operator's
// result type equals its operand type (the common case); otherwise it
// gives the fixed result terminal (bool, for relations and logical ops).
type OpEntry struct {
	Lexeme   string
	Kind     OpKind
	Covered  []Terminal
	Result   *Terminal // nil => result type equals operand type.
}

var boolTerminal = Bool

// Ops is the single source of truth for built-in operator metadata,
// consulted both to seed built-in overloads in the namespace (Seed below)
// and to classify callee lexemes during code generation (see package
// generate). Keeping both uses grounded in this one table is what keeps
// them consistent, per the design note on operator tables as data.
var Ops = []OpEntry{
	{Lexeme: "!", Kind: OpUnary, Covered: []Terminal{Bool}},
	{Lexeme: "~", Kind: OpUnary, Covered: integerTerminals},

	{Lexeme: "+", Kind: OpBinary, Covered: numericTerminals},
	{Lexeme: "-", Kind: OpBinary, Covered: numericTerminals},
	{Lexeme: "*", Kind: OpBinary, Covered: numericTerminals},
	{Lexeme: "/", Kind: OpBinary, Covered: numericTerminals},
	{Lexeme: "%", Kind: OpBinary, Covered: numericTerminals},

	{Lexeme: "&", Kind: OpBinary, Covered: integerTerminals},
	{Lexeme: "|", Kind: OpBinary, Covered: integerTerminals},
	{Lexeme: "^", Kind: OpBinary, Covered: integerTerminals},
	{Lexeme: "<<", Kind: OpBinary, Covered: integerTerminals},
	{Lexeme: ">>", Kind: OpBinary, Covered: integerTerminals},

	{Lexeme: "&&", Kind: OpBinary, Covered: []Terminal{Bool}, Result: &boolTerminal},
	{Lexeme: "||", Kind: OpBinary, Covered: []Terminal{Bool}, Result: &boolTerminal},
	{Lexeme: "^^", Kind: OpBinary, Covered: []Terminal{Bool}, Result: &boolTerminal},

	{Lexeme: "==", Kind: OpBinary, Covered: allTerminals, Result: &boolTerminal},
	{Lexeme: "!=", Kind: OpBinary, Covered: allTerminals, Result: &boolTerminal},

	{Lexeme: "<=", Kind: OpBinary, Covered: numericTerminals, Result: &boolTerminal},
	{Lexeme: ">=", Kind: OpBinary, Covered: numericTerminals, Result: &boolTerminal},
	{Lexeme: "<", Kind: OpBinary, Covered: numericTerminals, Result: &boolTerminal},
	{Lexeme: ">", Kind: OpBinary, Covered: numericTerminals, Result: &boolTerminal},
}

// LookupOp returns the OpEntry for lexeme, if any. Used by the generator to
// decide whether a call site lowers to a Unary/Binary instruction or a
// genuine user function call.
func LookupOp(lexeme string) (OpEntry, bool) {
	for _, op := range Ops {
		if op.Lexeme == lexeme {
			return op, true
		}
	}
	return OpEntry{}, false
}

// Seed populates a fresh module namespace with the thirteen type symbols
// and the operator overload sets, in the fixed order documented above.
func Seed(n *Namespace) {
	for _, t := range Terminals {
		n.DeclareOne(t.String(), TypeSymbol(t))
	}

	for _, op := range Ops {
		for _, covered := range op.Covered {
			ret := covered
			if op.Result != nil {
				ret = *op.Result
			}
			var params []Terminal
			if op.Kind == OpUnary {
				params = []Terminal{covered}
			} else {
				params = []Terminal{covered, covered}
			}
			n.DeclareOne(op.Lexeme, VarSymbol(FuncType(params, ret)))
		}
	}
}
