package syntax

import (
	"encoding/json"
	"io"
)

// FprintJSON writes a JSON representation of the AST to w.
// Every object carries its node "type" and source "span".
func FprintJSON(w io.Writer, node Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toJSON(node))
}

func toJSON(node Node) interface{} {
	if isNil(node) {
		return nil
	}

	m := map[string]interface{}{
		"span": node.Span().String(),
	}

	switch n := node.(type) {
	case *File:
		m["type"] = "File"
		m["stmts"] = mapSlice(n.Stmts, stmtJSON)
		if len(n.Comments) > 0 {
			m["comments"] = mapSlice(n.Comments, func(c *Comment) interface{} {
				return map[string]interface{}{
					"text":  c.Text,
					"block": c.Block,
					"span":  c.Span.String(),
				}
			})
		}

	case *VarDecl:
		m["type"] = "VarDecl"
		m["vartype"] = typeString(n.Type)
		m["name"] = n.Name.Value
		m["value"] = toJSON(n.Value)

	case *FuncDecl:
		m["type"] = "FuncDecl"
		m["result"] = typeString(n.Result)
		m["name"] = n.Name.Value
		m["params"] = mapSlice(n.Params, func(par *Param) interface{} { return toJSON(par) })
		m["body"] = toJSON(n.Body)

	case *Param:
		m["type"] = "Param"
		m["paramtype"] = typeString(n.Type)
		m["name"] = n.Name.Value

	case *BlockStmt:
		m["type"] = "BlockStmt"
		m["stmts"] = mapSlice(n.Stmts, stmtJSON)
		if n.Implicit {
			m["implicit"] = true
		}

	case *IfStmt:
		m["type"] = "IfStmt"
		m["cond"] = toJSON(n.Cond)
		m["then"] = toJSON(n.Then)
		if n.Else != nil {
			m["else"] = toJSON(n.Else)
		}

	case *WhileStmt:
		m["type"] = "WhileStmt"
		m["cond"] = toJSON(n.Cond)
		m["body"] = toJSON(n.Body)

	case *ForStmt:
		m["type"] = "ForStmt"
		if n.Init != nil {
			m["init"] = toJSON(n.Init)
		}
		if n.Cond != nil {
			m["cond"] = toJSON(n.Cond)
		}
		if n.Post != nil {
			m["post"] = toJSON(n.Post)
		}
		m["body"] = toJSON(n.Body)

	case *ReturnStmt:
		m["type"] = "ReturnStmt"
		if n.Result != nil {
			m["result"] = toJSON(n.Result)
		}

	case *BranchStmt:
		m["type"] = "BranchStmt"
		m["tok"] = n.Tok.String()

	case *AssignStmt:
		m["type"] = "AssignStmt"
		m["target"] = n.Target.Value
		m["value"] = toJSON(n.Value)

	case *ExprStmt:
		m["type"] = "ExprStmt"
		m["x"] = toJSON(n.X)

	case *BadStmt:
		m["type"] = "BadStmt"

	case *Name:
		m["type"] = "Name"
		m["value"] = n.Value

	case *NumberLit:
		m["type"] = "NumberLit"
		m["kind"] = n.Kind.String()
		m["value"] = n.Value

	case *BoolLit:
		m["type"] = "BoolLit"
		m["value"] = n.Value

	case *UnaryExpr:
		m["type"] = "UnaryExpr"
		m["op"] = n.Op.String()
		m["x"] = toJSON(n.X)

	case *BinaryExpr:
		m["type"] = "BinaryExpr"
		m["op"] = n.Op.String()
		m["x"] = toJSON(n.X)
		m["y"] = toJSON(n.Y)

	case *CallExpr:
		m["type"] = "CallExpr"
		m["fun"] = n.Fun.Value
		m["args"] = mapSlice(n.Args, exprJSON)

	case *ParenExpr:
		m["type"] = "ParenExpr"
		m["x"] = toJSON(n.X)

	case *BadExpr:
		m["type"] = "BadExpr"

	case *TypeName:
		m["type"] = "TypeName"
		m["kind"] = n.Kind.String()

	default:
		m["type"] = "Unknown"
	}
	return m
}

func stmtJSON(s Stmt) interface{} { return toJSON(s) }
func exprJSON(x Expr) interface{} { return toJSON(x) }

// Helper functions to map slices

func mapSlice[T any](s []T, f func(T) interface{}) []interface{} {
	result := make([]interface{}, len(s))
	for i, v := range s {
		result[i] = f(v)
	}
	return result
}
