package eval

import (
	"fmt"
	"strconv"
	"strings"

	"nickandperla.net/lseq/internal/scanner"
	"nickandperla.net/lseq/internal/series"
	"nickandperla.net/lseq/internal/token"
	"nickandperla.net/lseq/internal/value"
)

type builtin func(e *Evaluator, scan *scanner.Scanner) (string, error)

func getBuiltin(name string) builtin {
	switch name {
	case "seq":
		return evalSeq
	case "index":
		return evalIndex
	case "len":
		return evalLen
	case "step":
		return evalStep
	case "slice":
		return evalSlice
	case "reverse":
		return evalReverse
	case "elements":
		return evalElements
	case "print":
		return evalPrint
	case "set":
		return evalSet
	case "copy":
		return evalCopy
	case "drop":
		return evalDrop
	case "vars":
		return evalVars
	case "history":
		return evalHistory
	}
	return nil
}

func evalSeq(e *Evaluator, scan *scanner.Scanner) (string, error) {
	o, err := seqValue(scan)
	if err != nil {
		return "", err
	}
	return o.String(), nil
}

// seqValue parses the argument forms of seq and builds the series value.
// Accepted shapes:
//
//	seq N                  the N integers 0 .. N-1
//	seq FIRST LAST ?STEP?  positional bounds
//	seq FIRST ?to LAST? ?by STEP? ?count N?
//
// A real literal in first, last or step promotes the whole construction
// to the real domain. The count is always an integer.
func seqValue(scan *scanner.Scanner) (*value.Obj, error) {
	items, err := scan.All()
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("seq requires at least one argument")
	}

	keyworded := false
	for _, it := range items {
		if it.Token == token.WORD && token.IsKeyword(it.Word) {
			keyworded = true
			break
		}
	}

	var spec series.Spec
	useReal := false

	bind := func(slot **value.Obj, what string, it *scanner.Item) error {
		if *slot != nil {
			return fmt.Errorf("%s given more than once", what)
		}
		switch it.Token {
		case token.INT:
			*slot = value.NewInt(it.Int)
		case token.REAL:
			*slot = value.NewReal(it.Real)
			useReal = true
		default:
			return fmt.Errorf("expected a number for %s, got %q", what, it.Word)
		}
		return nil
	}

	bindCount := func(it *scanner.Item) error {
		if spec.Length != nil {
			return fmt.Errorf("count given more than once")
		}
		if it.Token != token.INT {
			return fmt.Errorf("expected an integer count, got %q", it.Word)
		}
		spec.Length = value.NewInt(it.Int)
		return nil
	}

	if !keyworded {
		switch len(items) {
		case 1:
			if err := bindCount(items[0]); err != nil {
				return nil, err
			}
		case 3:
			if err := bind(&spec.Step, "step", items[2]); err != nil {
				return nil, err
			}
			fallthrough
		case 2:
			if err := bind(&spec.Start, "first", items[0]); err != nil {
				return nil, err
			}
			if err := bind(&spec.End, "last", items[1]); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("too many arguments to seq")
		}
	} else {
		if err := bind(&spec.Start, "first", items[0]); err != nil {
			return nil, err
		}
		for i := 1; i < len(items); i += 2 {
			it := items[i]
			if it.Token != token.WORD || !token.IsKeyword(it.Word) {
				return nil, fmt.Errorf("expected a keyword, got %q", it.Word)
			}
			if i+1 >= len(items) {
				return nil, fmt.Errorf("keyword %q needs a value", it.Word)
			}
			arg := items[i+1]
			switch it.Word {
			case token.KeywordTo:
				err = bind(&spec.End, "last", arg)
			case token.KeywordBy:
				err = bind(&spec.Step, "step", arg)
			case token.KeywordCount:
				err = bindCount(arg)
			}
			if err != nil {
				return nil, err
			}
		}
	}

	return series.FromSpec(useReal, spec)
}

func evalIndex(e *Evaluator, scan *scanner.Scanner) (string, error) {
	o, err := indexValue(e, scan)
	if err != nil {
		return "", err
	}
	return o.String(), nil
}

func indexValue(e *Evaluator, scan *scanner.Scanner) (*value.Obj, error) {
	_, o, err := namedOperand(e, scan)
	if err != nil {
		return nil, err
	}
	i, err := intArg(scan, "index")
	if err != nil {
		return nil, err
	}
	if err := expectEnd(scan); err != nil {
		return nil, err
	}
	return value.ListIndex(o, i)
}

func evalLen(e *Evaluator, scan *scanner.Scanner) (string, error) {
	_, o, err := namedOperand(e, scan)
	if err != nil {
		return "", err
	}
	if err := expectEnd(scan); err != nil {
		return "", err
	}
	n, err := value.ListLength(o)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n, 10), nil
}

func evalStep(e *Evaluator, scan *scanner.Scanner) (string, error) {
	_, o, err := namedOperand(e, scan)
	if err != nil {
		return "", err
	}
	if err := expectEnd(scan); err != nil {
		return "", err
	}
	st, err := series.Step(o)
	if err != nil {
		return "", err
	}
	return st.String(), nil
}

// evalSlice narrows a list variable. An exclusively held value is
// rewritten in place and keeps its identity; a shared one is left for
// its other owners and the name is rebound to the fresh result.
func evalSlice(e *Evaluator, scan *scanner.Scanner) (string, error) {
	name, o, err := namedOperand(e, scan)
	if err != nil {
		return "", err
	}
	from, err := intArg(scan, "start index")
	if err != nil {
		return "", err
	}
	to, err := intArg(scan, "end index")
	if err != nil {
		return "", err
	}
	if err := expectEnd(scan); err != nil {
		return "", err
	}
	res, err := value.ListSlice(o, from, to)
	if err != nil {
		return "", err
	}
	if res != o {
		e.namespace.Set(name, res)
	}
	return res.String(), nil
}

// evalReverse reverses a list variable, with the same ownership
// handling as evalSlice.
func evalReverse(e *Evaluator, scan *scanner.Scanner) (string, error) {
	name, o, err := namedOperand(e, scan)
	if err != nil {
		return "", err
	}
	if err := expectEnd(scan); err != nil {
		return "", err
	}
	res, err := value.ListReverse(o)
	if err != nil {
		return "", err
	}
	if res != o {
		e.namespace.Set(name, res)
	}
	return res.String(), nil
}

func evalElements(e *Evaluator, scan *scanner.Scanner) (string, error) {
	_, o, err := namedOperand(e, scan)
	if err != nil {
		return "", err
	}
	if err := expectEnd(scan); err != nil {
		return "", err
	}
	elems, err := value.ListElements(o)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for i, el := range elems {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(el.String())
	}
	return b.String(), nil
}

func evalPrint(e *Evaluator, scan *scanner.Scanner) (string, error) {
	_, o, err := namedOperand(e, scan)
	if err != nil {
		return "", err
	}
	if err := expectEnd(scan); err != nil {
		return "", err
	}
	if err := e.outputWriter(o.String() + "\n"); err != nil {
		return "", err
	}
	return "", nil
}

// evalSet binds `set NAME = VALUE`, where VALUE is a literal, a
// variable name, or a value-producing command (seq, index, slice,
// reverse).
func evalSet(e *Evaluator, scan *scanner.Scanner) (string, error) {
	name, err := wordArg(scan, "variable name")
	if err != nil {
		return "", err
	}
	if getBuiltin(name) != nil {
		return "", fmt.Errorf("%q is a command name", name)
	}
	item, err := scan.Next()
	if err != nil {
		return "", err
	}
	if item.Token != token.ASSIGN {
		return "", fmt.Errorf("expected =, got %q", item.Word)
	}
	o, err := e.rhsValue(scan)
	if err != nil {
		return "", err
	}
	e.namespace.Set(name, o)
	return o.String(), nil
}

// rhsValue evaluates the right-hand side of an assignment.
func (e *Evaluator) rhsValue(scan *scanner.Scanner) (*value.Obj, error) {
	item, err := scan.Next()
	if err != nil {
		return nil, err
	}
	switch item.Token {
	case token.INT:
		if err := expectEnd(scan); err != nil {
			return nil, err
		}
		return value.NewInt(item.Int), nil
	case token.REAL:
		if err := expectEnd(scan); err != nil {
			return nil, err
		}
		return value.NewReal(item.Real), nil
	case token.WORD:
		switch item.Word {
		case "seq":
			return seqValue(scan)
		case "index":
			return indexValue(e, scan)
		case "slice":
			return sliceValue(e, scan)
		case "reverse":
			return reverseValue(e, scan)
		}
		if o := e.namespace.Get(item.Word); o != nil {
			if err := expectEnd(scan); err != nil {
				return nil, err
			}
			return o, nil
		}
	}
	return nil, fmt.Errorf("cannot evaluate %q as a value", item.Word)
}

// sliceValue evaluates slice as a value producer. The evaluation holds
// its own reference across the operation, so a value bound to exactly
// one variable still takes the copy path and that binding is untouched.
func sliceValue(e *Evaluator, scan *scanner.Scanner) (*value.Obj, error) {
	_, o, err := namedOperand(e, scan)
	if err != nil {
		return nil, err
	}
	from, err := intArg(scan, "start index")
	if err != nil {
		return nil, err
	}
	to, err := intArg(scan, "end index")
	if err != nil {
		return nil, err
	}
	if err := expectEnd(scan); err != nil {
		return nil, err
	}
	o.IncrRef()
	res, err := value.ListSlice(o, from, to)
	o.DecrRef()
	return res, err
}

// reverseValue evaluates reverse as a value producer, with the same
// reference handling as sliceValue.
func reverseValue(e *Evaluator, scan *scanner.Scanner) (*value.Obj, error) {
	_, o, err := namedOperand(e, scan)
	if err != nil {
		return nil, err
	}
	if err := expectEnd(scan); err != nil {
		return nil, err
	}
	o.IncrRef()
	res, err := value.ListReverse(o)
	o.DecrRef()
	return res, err
}

// evalCopy binds a second name to an existing value, making it shared.
func evalCopy(e *Evaluator, scan *scanner.Scanner) (string, error) {
	_, o, err := namedOperand(e, scan)
	if err != nil {
		return "", err
	}
	dst, err := wordArg(scan, "variable name")
	if err != nil {
		return "", err
	}
	if getBuiltin(dst) != nil {
		return "", fmt.Errorf("%q is a command name", dst)
	}
	if err := expectEnd(scan); err != nil {
		return "", err
	}
	e.namespace.Set(dst, o)
	return "", nil
}

func evalDrop(e *Evaluator, scan *scanner.Scanner) (string, error) {
	name, err := wordArg(scan, "variable name")
	if err != nil {
		return "", err
	}
	if err := expectEnd(scan); err != nil {
		return "", err
	}
	if !e.namespace.Has(name) {
		return "", fmt.Errorf("undefined variable %q", name)
	}
	e.namespace.Delete(name)
	return "", nil
}

func evalVars(e *Evaluator, scan *scanner.Scanner) (string, error) {
	if err := expectEnd(scan); err != nil {
		return "", err
	}
	return strings.Join(e.namespace.Names(), "\n"), nil
}

// namedOperand reads a variable name and resolves it. The reference is
// borrowed from the namespace.
func namedOperand(e *Evaluator, scan *scanner.Scanner) (string, *value.Obj, error) {
	item, err := scan.Next()
	if err != nil {
		return "", nil, err
	}
	if item.Token != token.WORD {
		return "", nil, fmt.Errorf("expected a variable name, got %q", item.Word)
	}
	o := e.namespace.Get(item.Word)
	if o == nil {
		return "", nil, fmt.Errorf("undefined variable %q", item.Word)
	}
	return item.Word, o, nil
}

func wordArg(scan *scanner.Scanner, what string) (string, error) {
	item, err := scan.Next()
	if err != nil {
		return "", err
	}
	if item.Token != token.WORD {
		return "", fmt.Errorf("expected a %s, got %q", what, item.Word)
	}
	return item.Word, nil
}

func intArg(scan *scanner.Scanner, what string) (int64, error) {
	item, err := scan.Next()
	if err != nil {
		return 0, err
	}
	if item.Token != token.INT {
		return 0, fmt.Errorf("expected an integer %s, got %q", what, item.Word)
	}
	return item.Int, nil
}
