package ast

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"
)

// FprintJSON writes a JSON representation of the AST to w.
func FprintJSON(w io.Writer, node Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ToMap(node))
}

// FprintYAML writes a YAML representation of the AST to w.
func FprintYAML(w io.Writer, node Node) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(ToMap(node)); err != nil {
		return err
	}
	return enc.Close()
}

// ToMap converts the tree rooted at node into nested maps and slices
// tagged with a "type" key, ready for a generic encoder.
func ToMap(node Node) map[string]any {
	if isNil(node) {
		return nil
	}

	switch n := node.(type) {
	case *Program:
		m := map[string]any{
			"type":  "Program",
			"items": mapStmts(n.Items),
		}
		if n.Filename != "" {
			m["filename"] = n.Filename
		}
		return m

	case *Block:
		return map[string]any{
			"type":  "Block",
			"pos":   n.StartPos.String(),
			"stmts": mapStmts(n.Stmts),
		}

	case *FuncDecl:
		params := make([]any, 0, len(n.Params))
		for _, param := range n.Params {
			params = append(params, param.Name)
		}
		return map[string]any{
			"type":       "FuncDeclaration",
			"pos":        n.StartPos.String(),
			"returnType": n.Type,
			"name":       identName(n.Name),
			"params":     params,
			"body":       ToMap(n.Body),
		}

	case *AssignStmt:
		return map[string]any{
			"type":   "Assignment",
			"pos":    n.StartPos.String(),
			"target": identName(n.Target),
			"value":  ToMap(n.Value),
		}

	case *IfStmt:
		m := map[string]any{
			"type": "IfStatement",
			"pos":  n.StartPos.String(),
			"cond": ToMap(n.Cond),
			"then": ToMap(n.Then),
		}
		if n.Else != nil {
			m["else"] = ToMap(n.Else)
		}
		return m

	case *ReturnStmt:
		return map[string]any{
			"type":   "ReturnStatement",
			"pos":    n.StartPos.String(),
			"result": ToMap(n.Result),
		}

	case *Ident:
		return map[string]any{
			"type": "Identifier",
			"pos":  n.StartPos.String(),
			"name": n.Name,
		}

	case *IntLit:
		return map[string]any{
			"type":  "IntLiteral",
			"pos":   n.StartPos.String(),
			"value": n.Value,
		}

	case *StrLit:
		return map[string]any{
			"type":  "StringLiteral",
			"pos":   n.StartPos.String(),
			"value": n.Value,
		}

	case *BinaryExpr:
		return map[string]any{
			"type":  "BinaryOp",
			"pos":   n.StartPos.String(),
			"op":    n.Op,
			"left":  ToMap(n.Left),
			"right": ToMap(n.Right),
		}

	case *CallExpr:
		args := make([]any, 0, len(n.Args))
		for _, arg := range n.Args {
			args = append(args, ToMap(arg))
		}
		return map[string]any{
			"type": "FuncCall",
			"pos":  n.StartPos.String(),
			"func": identName(n.Func),
			"args": args,
		}
	}
	return nil
}

func mapStmts(stmts []Stmt) []any {
	out := make([]any, 0, len(stmts))
	for _, s := range stmts {
		out = append(out, ToMap(s))
	}
	return out
}
