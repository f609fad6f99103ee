// Command jsonsimplify reads a JSON Schema document and writes its
// simplified equivalent.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	yaml "github.com/goccy/go-yaml"

	"github.com/kaptinlin/jsonsimplify"
)

func main() {
	format := flag.String("format", "json", "input format: json or yaml")
	pretty := flag.Bool("pretty", false, "indent the output")
	verbose := flag.Bool("verbose", false, "log each rule invocation to stderr")
	flag.Parse()

	var input []byte
	var err error
	if args := flag.Args(); len(args) > 0 {
		input, err = os.ReadFile(args[0])
	} else {
		input, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		log.Fatalf("read input: %v", err)
	}

	data := input
	if *format == "yaml" {
		data, err = yaml.YAMLToJSON(input)
		if err != nil {
			log.Fatalf("convert yaml to json: %v", err)
		}
	}

	var opts []simplify.Option
	if *verbose {
		opts = append(opts, simplify.WithSink(simplify.SlogSink{Logger: newStderrLogger()}))
	}

	var out []byte
	if *pretty {
		out, err = simplify.SimplifyJSONIndent(data, "", "  ", opts...)
	} else {
		out, err = simplify.SimplifyJSON(data, opts...)
	}
	if err != nil {
		log.Fatalf("simplify: %v", err)
	}

	fmt.Println(string(out))
}

func newStderrLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
