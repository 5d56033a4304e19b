package kubectl

import (
	"strconv"
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// Command is a kubectl invocation in argument form.
type Command struct {
	Binary string
	Args   []string
}

// String renders the command as a line that can be pasted into a shell.
func (c Command) String() string {
	words := make([]string, 0, len(c.Args)+1)
	words = append(words, quote(c.Binary))
	for _, a := range c.Args {
		words = append(words, quote(a))
	}
	return strings.Join(words, " ")
}

func quote(s string) string {
	q, err := syntax.Quote(s, syntax.LangBash)
	if err != nil {
		return strconv.Quote(s)
	}
	return q
}

// Scoped prefixes args with the context and namespace selectors.
// Empty values are left out.
func Scoped(kubeContext, namespace string, args ...string) []string {
	out := make([]string, 0, len(args)+4)
	if kubeContext != "" {
		out = append(out, "--context", kubeContext)
	}
	if namespace != "" {
		out = append(out, "-n", namespace)
	}
	return append(out, args...)
}

// SplitWords splits a shell command line such as "bash -l" into words.
// Anything the shell parser rejects falls back to whitespace splitting.
func SplitWords(line string) []string {
	file, err := syntax.NewParser().Parse(strings.NewReader(line), "")
	if err != nil {
		return strings.Fields(line)
	}

	var words []string
	literal := true
	syntax.Walk(file, func(node syntax.Node) bool {
		call, ok := node.(*syntax.CallExpr)
		if !ok || words != nil {
			return true
		}
		for _, w := range call.Args {
			lit := w.Lit()
			if lit == "" {
				literal = false
			}
			words = append(words, lit)
		}
		return false
	})
	if len(words) == 0 || !literal {
		return strings.Fields(line)
	}
	return words
}
