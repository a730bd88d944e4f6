package expression

import (
	"fmt"

	"github.com/expr-lang/expr"

	"github.com/arvheim/fkit/pkg/paths"
)

// FilterFiles returns the files matching every expression. With no
// expressions the input is returned unchanged.
func FilterFiles(files []paths.File, expressions []CompiledExpression) ([]paths.File, error) {
	if len(expressions) == 0 {
		return files, nil
	}

	filtered := make([]paths.File, 0, len(files))
	for _, f := range files {
		match, err := CheckFileAllMatch(f, expressions)
		if err != nil {
			return nil, err
		}
		if match {
			filtered = append(filtered, f)
		}
	}

	return filtered, nil
}

func CheckFileSingleMatch(f paths.File, expressions []CompiledExpression) (bool, error) {
	match, _, err := CheckFileSingleMatchWithReason(f, expressions)
	return match, err
}

func CheckFileAllMatch(f paths.File, expressions []CompiledExpression) (bool, error) {
	match, _, err := CheckFileAllMatchWithReason(f, expressions)
	return match, err
}

func CheckFileSingleMatchWithReason(f paths.File, expressions []CompiledExpression) (bool, string, error) {
	for _, expression := range expressions {
		result, err := expr.Run(expression.Program, f)
		if err != nil {
			return false, "", fmt.Errorf("check expression: %w", err)
		}

		expResult, ok := result.(bool)
		if !ok {
			return false, "", fmt.Errorf("expression %q did not evaluate to a bool", expression.Text)
		}

		if expResult {
			return true, expression.Text, nil
		}
	}

	return false, "", nil
}

func CheckFileAllMatchWithReason(f paths.File, expressions []CompiledExpression) (bool, []string, error) {
	var failedExpressions []string

	for _, expression := range expressions {
		result, err := expr.Run(expression.Program, f)
		if err != nil {
			return false, nil, fmt.Errorf("check expression: %w", err)
		}

		expResult, ok := result.(bool)
		if !ok {
			return false, nil, fmt.Errorf("expression %q did not evaluate to a bool", expression.Text)
		}

		if !expResult {
			failedExpressions = append(failedExpressions, expression.Text)
		}
	}

	if len(failedExpressions) > 0 {
		return false, failedExpressions, nil
	}

	return true, nil, nil
}
