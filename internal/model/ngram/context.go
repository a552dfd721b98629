package ngram

import "strings"

// Context is an ordered sequence of n consecutive tokens used as the lookup
// key into a transition table. A single key shape is used for every order:
// a unigram context is a Context of length 1, whose Key collapses to the
// bare token.
type Context []string

// Key returns the context as a space-separated string. Tokens never contain
// whitespace, so the joined form is unambiguous as a map key.
func (c Context) Key() string {
	return strings.Join(c, " ")
}

// First returns the first token of the context, or "" when empty.
func (c Context) First() string {
	if len(c) == 0 {
		return ""
	}
	return c[0]
}

// ContextOf copies the last n tokens of a sequence into a Context.
func ContextOf(tokens []string, n int) Context {
	ctx := make(Context, n)
	copy(ctx, tokens[len(tokens)-n:])
	return ctx
}
