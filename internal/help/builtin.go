package help

// Categories used by the builtin entries. CategoryExtension marks entries
// contributed by site extensions rather than the stock language.
const (
	CategoryStatement = "statement"
	CategorySection   = "section"
	CategoryFunction  = "function"
	CategoryType      = "type"
	CategoryExtension = "extension"
)

// Builtin returns the documentation table for stock BenchScript.
func Builtin() *Docs {
	d := New()
	d.Add(builtinEntries...)
	return d
}

var builtinEntries = []Entry{
	{Name: "program", Signature: "program NAME", Summary: "Opens a test program; closed by end program.", Category: CategorySection},
	{Name: "function", Signature: "function NAME(args)", Summary: "Opens a function body; closed by end function.", Category: CategorySection},
	{Name: "for", Signature: "for VAR = FIRST to LAST [step N]", Summary: "Opens a counted loop; closed by next.", Category: CategoryStatement},
	{Name: "next", Signature: "next [VAR]", Summary: "Closes the innermost for loop.", Category: CategoryStatement},
	{Name: "loop", Signature: "loop", Summary: "Opens an unconditional loop; closed by end loop.", Category: CategoryStatement},
	{Name: "handle", Signature: "handle FAULT", Summary: "Opens a fault handler block; closed by end handle.", Category: CategorySection},
	{Name: "exercise", Signature: "exercise NAME", Summary: "Opens an exercise block driving a unit under test.", Category: CategorySection},
	{Name: "declare", Signature: "declare", Summary: "Opens a declaration block. With a same-line declaration (declare numeric n) it is a single statement.", Category: CategoryStatement},
	{Name: "if", Signature: "if COND then", Summary: "Opens a conditional when then ends the line; a same-line body makes it a single statement.", Category: CategoryStatement},
	{Name: "then", Signature: "if COND then", Summary: "Terminates an if or else if condition.", Category: CategoryStatement},
	{Name: "else", Signature: "else [if COND then]", Summary: "Starts the next arm of a conditional at the same depth.", Category: CategoryStatement},
	{Name: "end", Signature: "end [BLOCK]", Summary: "Closes the innermost open block.", Category: CategoryStatement},
	{Name: "arm", Signature: "arm device PATH", Summary: "Opens a device section and arms the addressed device.", Category: CategorySection},
	{Name: "readout", Signature: "readout device PATH", Summary: "Closes a device section and reads the device back.", Category: CategorySection},
	{Name: "return", Signature: "return [VALUE]", Summary: "Leaves the enclosing function.", Category: CategoryStatement},

	{Name: "numeric", Signature: "declare numeric NAME", Summary: "Declares a floating point variable.", Category: CategoryType},
	{Name: "string", Signature: "declare string NAME", Summary: "Declares a text variable.", Category: CategoryType},
	{Name: "boolean", Signature: "declare boolean NAME", Summary: "Declares a true/false variable.", Category: CategoryType},

	{Name: "measure", Signature: "measure(CHANNEL)", Summary: "Samples the channel and returns the reading.", Category: CategoryFunction},
	{Name: "setline", Signature: "setline(LINE, LEVEL)", Summary: "Drives a digital line to the given level.", Category: CategoryFunction},
	{Name: "readline", Signature: "readline(LINE)", Summary: "Returns the current level of a digital line.", Category: CategoryFunction},
	{Name: "trigger", Signature: "trigger(SOURCE)", Summary: "Fires the named trigger source.", Category: CategoryFunction},
	{Name: "delay", Signature: "delay(SECONDS)", Summary: "Pauses execution for the given time.", Category: CategoryFunction},
	{Name: "abs", Signature: "abs(X)", Summary: "Returns the absolute value of X.", Category: CategoryFunction},
	{Name: "min", Signature: "min(A, B)", Summary: "Returns the smaller of A and B.", Category: CategoryFunction},
	{Name: "max", Signature: "max(A, B)", Summary: "Returns the larger of A and B.", Category: CategoryFunction},
	{Name: "sqrt", Signature: "sqrt(X)", Summary: "Returns the square root of X.", Category: CategoryFunction},
	{Name: "round", Signature: "round(X)", Summary: "Returns X rounded to the nearest integer.", Category: CategoryFunction},
	{Name: "format", Signature: "format(TEMPLATE, args)", Summary: "Builds a string from a template and arguments.", Category: CategoryFunction},
	{Name: "len", Signature: "len(S)", Summary: "Returns the length of a string.", Category: CategoryFunction},
}
