package expression

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/arvheim/fkit/pkg/paths"
)

type CompiledExpression struct {
	Text    string
	Program *vm.Program
}

// Compile compiles boolean file-filter expressions evaluated against a
// paths.File (FileName, Ext(), Size, Directory, ModifiedTime, ...).
func Compile(expressions []string) ([]CompiledExpression, error) {
	compiled := make([]CompiledExpression, 0, len(expressions))

	for _, text := range expressions {
		program, err := expr.Compile(text, expr.Env(paths.File{}), expr.AsBool())
		if err != nil {
			return nil, fmt.Errorf("compile expression %q: %w", text, err)
		}

		compiled = append(compiled, CompiledExpression{
			Text:    text,
			Program: program,
		})
	}

	return compiled, nil
}
