// cmd/ternary/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/copyl-sys/ternary/internal/bigint"
	"github.com/copyl-sys/ternary/internal/eval"
)

const VERSION = "0.1.0"

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		showUsage()
		return
	}

	switch args[0] {
	case "--help", "-h", "help":
		showUsage()
	case "--version", "-v", "version":
		fmt.Printf("ternary %s\n", VERSION)
	case "eval":
		if len(args) < 2 {
			log.Fatal("eval requires an expression argument")
		}
		runEval(args[1])
	case "opcode":
		if len(args) < 4 {
			log.Fatal("opcode requires <word> <a> <b>")
		}
		runOpcode(args[1], args[2], args[3])
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", args[0])
		showUsage()
		os.Exit(1)
	}
}

func runEval(expr string) {
	kc := bigint.New()
	result, err := eval.Eval(context.Background(), kc, expr)
	if err != nil {
		log.Fatalf("eval error: %v", err)
	}
	ternText, _ := bigint.ToText(result, bigint.Ternary)
	balText, _ := bigint.ToText(result, bigint.BalancedTernary)
	fmt.Printf("ternary:  %s\n", ternText)
	fmt.Printf("balanced: %s\n", balText)
}

func runOpcode(word, aStr, bStr string) {
	a, err := strconv.ParseInt(aStr, 10, 64)
	if err != nil {
		log.Fatalf("invalid operand a: %v", err)
	}
	b, err := strconv.ParseInt(bStr, 10, 64)
	if err != nil {
		log.Fatalf("invalid operand b: %v", err)
	}
	kc := bigint.New()
	result, err := eval.Execute(context.Background(), kc, word, a, b)
	if err != nil {
		log.Fatalf("opcode error: %v", err)
	}
	fmt.Println(result)
}

func showUsage() {
	fmt.Println("ternary - arbitrary-precision ternary arithmetic")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  ternary eval \"<expr>\"           Evaluate a ternary/balanced-ternary expression")
	fmt.Println("  ternary opcode <word> <a> <b>   Decode and execute a discrete opcode word")
	fmt.Println("  ternary --version               Show version")
	fmt.Println()
	fmt.Println("Expression literals:")
	fmt.Println("  unsigned ternary digits: 0-2, e.g. 1210")
	fmt.Println("  balanced ternary digits: T01,  e.g. T01 (T=-1)")
	fmt.Println("Operators: + - * / % & | and unary -")
}
