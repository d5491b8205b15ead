package main

import (
	"fmt"
	"log"

	"github.com/go-sexp/sexp/parser"
	"github.com/kr/pretty"
)

func main() {
	input := `(define (square x) (* x x) "squares a number" 2.5)`

	expr, err := parser.Parse([]byte(input))
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	pretty.Println(expr)

	p := parser.New([]byte(`(a) 42 "tail"`))
	for {
		expr, err := p.Next()
		if err != nil {
			break
		}
		fmt.Printf("expression ending at offset %d: %v\n", p.Offset(), expr)
	}
}
