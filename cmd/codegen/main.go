package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/delaneyj/hookparty/cmd/codegen/templates"
)

const (
	arityKey  = "arity"
	outputKey = "out"
)

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate the arity-typed hook wrappers",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  arityKey,
				Usage: "Highest dependency arity to generate",
				Value: 8,
			},
			&cli.StringFlag{
				Name:  outputKey,
				Usage: "Output path for the generated package",
				Value: "typed/typed.go",
			},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	log.Printf("Codegen for typed hooks started")
	defer func() {
		log.Printf("Codegen for typed hooks finished in %v", time.Since(start))
	}()

	maxArity := int(cmd.Uint(arityKey))
	out := cmd.String(outputKey)
	log.Printf("Max arity: %d", maxArity)

	contents := templates.TypedHooksGen(maxArity)
	return os.WriteFile(out, []byte(contents), 0644)
}
