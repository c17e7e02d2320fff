package visibility

// Evaluator decides whether a field participates in prompting or in the
// rendered document, based on its governing rule and the current answers.
type Evaluator interface {
	Eval(fieldKey, rule string, ctx Context) (bool, error)
}

// Context carries the inputs a rule can reference. Answers holds the flat
// answer record (string and bool values); Selected holds the product
// selection set, reachable from rules via the `selected.` prefix.
type Context struct {
	Answers  map[string]any
	Selected map[string]bool
}

// EvaluatorFunc adapts a function into an Evaluator.
type EvaluatorFunc func(fieldKey, rule string, ctx Context) (bool, error)

// Eval delegates to the underlying function.
func (fn EvaluatorFunc) Eval(fieldKey, rule string, ctx Context) (bool, error) {
	return fn(fieldKey, rule, ctx)
}
