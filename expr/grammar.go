package expr

// Grammar is the expression grammar in the EBNF notation understood by
// golang.org/x/exp/ebnf. Capitalized productions are syntactic,
// lowercase ones lexical. It is the reference description of what
// Parse accepts; the calc CLI and the tests verify it stays well formed.
const Grammar = `Expr = Term { ( "+" | "-" ) Term } .
Term = Factor { ( "*" | "/" ) Factor } .
Factor = "(" Expr ")" | integer | identifier .
integer = digit { digit } .
identifier = letter { letter } .
digit = "0" … "9" .
letter = "a" … "z" | "A" … "Z" .
`

// GrammarStart is the start production for verifying Grammar.
const GrammarStart = "Expr"
