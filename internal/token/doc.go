// Package token defines lexical token kinds for the minic frontend.
// Invariants:
//   - Token.Text is a copy of the exact source slice for the token.
//   - Token.Span matches Text exactly (Begin..End).
//   - Keywords are recognized by the lexer via LookupKeyword, so 'int'
//     never reaches the parser as a plain identifier.
package token
