package expr

import "fmt"

// Eval computes the value of tree. Variables are looked up in vars;
// referencing a name not present there is an error, as is dividing by
// zero. Arithmetic wraps on int64 overflow.
func Eval(tree Expr, vars map[string]int64) (int64, error) {
	switch n := tree.(type) {
	case IntLit:
		return n.Value, nil
	case Var:
		value, ok := vars[n.Name]
		if !ok {
			return 0, fmt.Errorf("undefined variable %q", n.Name)
		}
		return value, nil
	case *BinaryExpr:
		left, err := Eval(n.Left, vars)
		if err != nil {
			return 0, err
		}
		right, err := Eval(n.Right, vars)
		if err != nil {
			return 0, err
		}
		switch n.Op {
		case OpAdd:
			return left + right, nil
		case OpSub:
			return left - right, nil
		case OpMul:
			return left * right, nil
		case OpDiv:
			if right == 0 {
				return 0, fmt.Errorf("division by zero in %s", n)
			}
			return left / right, nil
		}
		return 0, fmt.Errorf("unknown operator %s", n.Op)
	}
	return 0, fmt.Errorf("unknown node type %T", tree)
}

// Vars collects the variable names referenced by tree, in first-use
// order without duplicates.
func Vars(tree Expr) []string {
	var names []string
	seen := make(map[string]bool)
	var walk func(Expr)
	walk = func(e Expr) {
		switch n := e.(type) {
		case Var:
			if !seen[n.Name] {
				seen[n.Name] = true
				names = append(names, n.Name)
			}
		case *BinaryExpr:
			walk(n.Left)
			walk(n.Right)
		}
	}
	walk(tree)
	return names
}
