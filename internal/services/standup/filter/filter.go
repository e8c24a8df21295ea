// Package filter parses AIP-160 filter expressions for standup listings and
// translates them to SQL conditions over the standups table.
package filter

import (
	"fmt"
	"strings"
	"time"

	"go.einride.tech/aip/filtering"
	expr "google.golang.org/genproto/googleapis/api/expr/v1alpha1"

	"github.com/turnwise/standup/internal/services/standup/storage"
)

// Declarations returns the field declarations accepted in standup filters.
func Declarations() (*filtering.Declarations, error) {
	return filtering.NewDeclarations(
		filtering.DeclareStandardFunctions(),
		filtering.DeclareIdent("name", filtering.TypeString),
		filtering.DeclareIdent("started_at", filtering.TypeTimestamp),
		filtering.DeclareIdent("finished_at", filtering.TypeTimestamp),
	)
}

// fieldColumns maps filter field names to standups table columns. Timestamp
// columns hold Unix milliseconds with 0 as the "unset" sentinel.
var fieldColumns = map[string]string{
	"name":        "name",
	"started_at":  "started_at",
	"finished_at": "finished_at",
}

var timestampFields = map[string]bool{
	"started_at":  true,
	"finished_at": true,
}

// ParseListFilter parses an AIP-160 expression into a storage list filter.
// An empty expression yields an empty filter.
func ParseListFilter(filterStr string) (storage.ListFilter, error) {
	if strings.TrimSpace(filterStr) == "" {
		return storage.ListFilter{}, nil
	}

	decls, err := Declarations()
	if err != nil {
		return storage.ListFilter{}, fmt.Errorf("create declarations: %w", err)
	}

	parsed, err := filtering.ParseFilterString(filterStr, decls)
	if err != nil {
		return storage.ListFilter{}, fmt.Errorf("parse filter: %w", err)
	}

	return translateExpr(parsed.CheckedExpr.Expr)
}

func translateExpr(e *expr.Expr) (storage.ListFilter, error) {
	if e == nil {
		return storage.ListFilter{}, nil
	}

	switch kind := e.ExprKind.(type) {
	case *expr.Expr_CallExpr:
		return translateCall(kind.CallExpr)
	default:
		return storage.ListFilter{}, fmt.Errorf("unsupported expression type: %T", kind)
	}
}

func translateCall(call *expr.Expr_Call) (storage.ListFilter, error) {
	switch call.Function {
	case "_&&_", "AND":
		return translateLogical(call.Args, "AND")
	case "_||_", "OR":
		return translateLogical(call.Args, "OR")
	case "_==_", "=":
		return translateComparison(call.Args, "=")
	case "_!=_", "!=":
		return translateComparison(call.Args, "!=")
	case "_<_", "<":
		return translateComparison(call.Args, "<")
	case "_<=_", "<=":
		return translateComparison(call.Args, "<=")
	case "_>_", ">":
		return translateComparison(call.Args, ">")
	case "_>=_", ">=":
		return translateComparison(call.Args, ">=")
	default:
		return storage.ListFilter{}, fmt.Errorf("unsupported function: %s", call.Function)
	}
}

func translateLogical(args []*expr.Expr, op string) (storage.ListFilter, error) {
	if len(args) != 2 {
		return storage.ListFilter{}, fmt.Errorf("%s requires 2 arguments", op)
	}

	left, err := translateExpr(args[0])
	if err != nil {
		return storage.ListFilter{}, err
	}
	right, err := translateExpr(args[1])
	if err != nil {
		return storage.ListFilter{}, err
	}

	return storage.ListFilter{
		Clause: fmt.Sprintf("(%s %s %s)", left.Clause, op, right.Clause),
		Params: append(left.Params, right.Params...),
	}, nil
}

func translateComparison(args []*expr.Expr, op string) (storage.ListFilter, error) {
	if len(args) != 2 {
		return storage.ListFilter{}, fmt.Errorf("comparison requires 2 arguments")
	}

	field, err := extractFieldName(args[0])
	if err != nil {
		return storage.ListFilter{}, err
	}
	column, ok := fieldColumns[field]
	if !ok {
		return storage.ListFilter{}, fmt.Errorf("unknown field: %s", field)
	}

	value, err := extractValue(args[1], timestampFields[field])
	if err != nil {
		return storage.ListFilter{}, err
	}

	return storage.ListFilter{
		Clause: fmt.Sprintf("%s %s ?", column, op),
		Params: []any{value},
	}, nil
}

func extractFieldName(e *expr.Expr) (string, error) {
	if e == nil {
		return "", fmt.Errorf("nil expression")
	}

	switch kind := e.ExprKind.(type) {
	case *expr.Expr_IdentExpr:
		return kind.IdentExpr.Name, nil
	default:
		return "", fmt.Errorf("expected identifier, got %T", kind)
	}
}

func extractValue(e *expr.Expr, wantTimestamp bool) (any, error) {
	if e == nil {
		return nil, fmt.Errorf("nil expression")
	}

	switch kind := e.ExprKind.(type) {
	case *expr.Expr_ConstExpr:
		return extractConstValue(kind.ConstExpr)
	case *expr.Expr_CallExpr:
		if kind.CallExpr.Function == "timestamp" && len(kind.CallExpr.Args) == 1 {
			return extractTimestampMillis(kind.CallExpr.Args[0])
		}
		return nil, fmt.Errorf("unsupported function in value position: %s", kind.CallExpr.Function)
	default:
		if wantTimestamp {
			return nil, fmt.Errorf("expected timestamp(\"...\") value")
		}
		return nil, fmt.Errorf("expected constant, got %T", kind)
	}
}

func extractConstValue(c *expr.Constant) (any, error) {
	if c == nil {
		return nil, fmt.Errorf("nil constant")
	}

	switch kind := c.ConstantKind.(type) {
	case *expr.Constant_StringValue:
		return kind.StringValue, nil
	case *expr.Constant_Int64Value:
		return kind.Int64Value, nil
	case *expr.Constant_Uint64Value:
		return kind.Uint64Value, nil
	case *expr.Constant_DoubleValue:
		return kind.DoubleValue, nil
	case *expr.Constant_BoolValue:
		return kind.BoolValue, nil
	default:
		return nil, fmt.Errorf("unsupported constant type: %T", kind)
	}
}

// extractTimestampMillis converts timestamp("RFC3339") arguments to the Unix
// millisecond representation the standups table stores.
func extractTimestampMillis(e *expr.Expr) (int64, error) {
	if e == nil {
		return 0, fmt.Errorf("nil timestamp argument")
	}

	constExpr, ok := e.ExprKind.(*expr.Expr_ConstExpr)
	if !ok {
		return 0, fmt.Errorf("timestamp argument must be a constant string")
	}
	strVal, ok := constExpr.ConstExpr.ConstantKind.(*expr.Constant_StringValue)
	if !ok {
		return 0, fmt.Errorf("timestamp argument must be a string")
	}

	parsed, err := time.Parse(time.RFC3339, strVal.StringValue)
	if err != nil {
		parsed, err = time.Parse(time.RFC3339Nano, strVal.StringValue)
		if err != nil {
			return 0, fmt.Errorf("invalid timestamp format: %s", strVal.StringValue)
		}
	}
	return parsed.UTC().UnixMilli(), nil
}
