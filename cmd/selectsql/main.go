package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"selectsql"

	"github.com/chzyer/readline"
	"go.uber.org/zap"
)

var (
	query   = flag.String("q", "", "Parse a single query and exit.")
	file    = flag.String("f", "", "Parse the contents of a file and exit.")
	demo    = flag.Bool("demo", false, "Parse a canned set of example queries and exit.")
	verbose = flag.Bool("v", false, "Enable debug logging.")
)

var demoQueries = []string{
	"select id, name from users where active = true",
	"select * from products",
	"select sum(price) from sales where quantity >= 100",
	"select name from (select name from employees where department = 'HR') where active = false",
	"select id, name from where",
}

func main() {
	flag.Parse()

	logger := zap.NewNop()
	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			panic(err)
		}
		logger = l
	}
	defer logger.Sync()

	switch {
	case *query != "":
		os.Exit(run(logger, *query))
	case *file != "":
		raw, err := os.ReadFile(*file)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error reading file:", err)
			os.Exit(1)
		}
		os.Exit(run(logger, string(raw)))
	case *demo:
		for _, q := range demoQueries {
			fmt.Println("Parsing query:", q)
			run(logger, q)
			fmt.Println("----------------------------------------")
		}
	default:
		repl(logger)
	}
}

// run parses one query and renders the AST or the error. Returns the
// process exit code.
func run(logger *zap.Logger, input string) int {
	start := time.Now()
	ast, err := selectsql.Parse(input)
	logger.Debug("parse finished",
		zap.Duration("elapsed", time.Since(start)),
		zap.Bool("ok", err == nil),
	)
	if err != nil {
		fmt.Println("Error:", err)
		return 1
	}

	out, err := json.MarshalIndent(ast, "", "  ")
	if err != nil {
		logger.Error("encoding AST", zap.Error(err))
		return 1
	}
	fmt.Println(string(out))
	return 0
}

func repl(logger *zap.Logger) {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "# ",
		HistoryFile:     "/tmp/selectsql.tmp",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		panic(err)
	}
	defer l.Close()

	fmt.Println("Welcome to selectsql.")
	for {
		line, err := l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Println("Error while reading line:", err)
			continue
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if trimmed == "quit" || trimmed == "exit" || trimmed == "\\q" {
			break
		}

		run(logger, trimmed)
	}
}
