package main

import (
	"context"
	"fmt"
	"io"

	"github.com/SuyashSrivastava1/ReadAble/internal/fetch"
	"github.com/SuyashSrivastava1/ReadAble/internal/ingestion"
)

// input is one text to process and where it came from
type input struct {
	Source string
	Text   string
}

// readInputs resolves each argument to text. Arguments may be file paths,
// http(s) URLs or "-" for stdin; no arguments reads stdin.
func readInputs(ctx context.Context, args []string, stdin io.Reader) ([]input, error) {
	if len(args) == 0 {
		args = []string{"-"}
	}

	inputs := make([]input, 0, len(args))
	for _, arg := range args {
		in, err := readInput(ctx, arg, stdin)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, in)
	}
	return inputs, nil
}

func readInput(ctx context.Context, arg string, stdin io.Reader) (input, error) {
	if fetch.IsURL(arg) {
		page, err := fetch.Article(ctx, arg, nil)
		if err != nil {
			return input{}, err
		}
		return input{Source: arg, Text: page.Text}, nil
	}

	text, err := ingestion.ReadInput(arg, stdin)
	if err != nil {
		return input{}, err
	}
	if text == "" {
		return input{}, fmt.Errorf("%s: no text to process", sourceName(arg))
	}
	return input{Source: sourceName(arg), Text: text}, nil
}

func sourceName(arg string) string {
	if arg == "" || arg == "-" {
		return "stdin"
	}
	return arg
}
