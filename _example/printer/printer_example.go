package main

import (
	"fmt"
	"log"

	"github.com/go-sexp/sexp"
	"github.com/go-sexp/sexp/ast"
)

func main() {
	// Bool and Char never come out of the parser, but trees built by hand
	// may carry them.
	tree := ast.List{
		ast.Symbol("config"),
		ast.Bool(true),
		ast.Char('y'),
		ast.List{ast.Symbol("retries"), ast.Int(3)},
		ast.List{ast.Symbol("timeout"), ast.Float(2.5)},
		ast.String("local node"),
	}

	text := sexp.Print(tree)
	fmt.Println(text)

	back, err := sexp.Parse([]byte(text))
	if err != nil {
		log.Fatal("sexp.Parse:", err)
	}
	fmt.Println(sexp.Print(back))
}
