package testing

import "fmt"

// bracket pairs recognized by CheckBalanced. Each opener must be closed by
// its own closer; closers of different bracket kinds may not interleave
// incorrectly (the stream must nest like parentheses).
var bracketPairs = map[string]string{
	"pushClip":      "popClip",
	"save":          "restore",
	"pushTranslate": "popTransform",
}

// CheckBalanced verifies that clip, save and translate brackets in the op
// stream are pairwise matched and correctly nested. It returns an error
// describing the first violation, or nil.
func CheckBalanced(ops []DisplayOp) error {
	var stack []string
	for i, op := range ops {
		if closer, isOpener := bracketPairs[op.Op]; isOpener {
			stack = append(stack, closer)
			continue
		}
		if !isCloser(op.Op) {
			continue
		}
		if len(stack) == 0 {
			return fmt.Errorf("op %d: %s without matching opener", i, op.Op)
		}
		expected := stack[len(stack)-1]
		if op.Op != expected {
			return fmt.Errorf("op %d: got %s, want %s (incorrect nesting)", i, op.Op, expected)
		}
		stack = stack[:len(stack)-1]
	}
	if len(stack) != 0 {
		return fmt.Errorf("%d unclosed brackets at end of stream", len(stack))
	}
	return nil
}

func isCloser(op string) bool {
	for _, closer := range bracketPairs {
		if op == closer {
			return true
		}
	}
	return false
}
