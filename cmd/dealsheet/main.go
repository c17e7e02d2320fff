package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	dealsheet "github.com/goliatone/go-dealsheet"
	"github.com/goliatone/go-dealsheet/pkg/document/htmldoc"
	"github.com/goliatone/go-dealsheet/pkg/document/pdfdoc"
	"github.com/goliatone/go-dealsheet/pkg/export"
	"github.com/goliatone/go-dealsheet/pkg/prompt"
	"github.com/goliatone/go-dealsheet/pkg/session"
)

func main() {
	_ = godotenv.Load()

	out := flag.String("out", envOr("DEALSHEET_OUT", "."), "output directory")
	format := flag.String("format", envOr("DEALSHEET_FORMAT", "html"), "output format: html, pdf or both")
	input := flag.String("input", envOr("DEALSHEET_INPUT", ""), "YAML prefill file")
	themeName := flag.String("theme", envOr("DEALSHEET_THEME", htmldoc.DefaultTheme), "document theme")
	variant := flag.String("variant", envOr("DEALSHEET_VARIANT", ""), "theme variant")
	fontPath := flag.String("font", envOr("DEALSHEET_FONT", ""), "TTF font for PDF output")
	nonInteractive := flag.Bool("non-interactive", false, "skip prompts and generate from the prefill")
	flag.Parse()

	formats, err := parseFormats(*format)
	if err != nil {
		log.Fatal(err)
	}

	sess := session.New()
	if by := os.Getenv("DEALSHEET_COMPLETED_BY"); by != "" {
		sess.SetField("completadoPor", by)
	}
	if *input != "" {
		prefill, err := session.LoadPrefill(*input)
		if err != nil {
			log.Fatalf("load prefill: %v", err)
		}
		if err := sess.Apply(prefill); err != nil {
			log.Fatalf("apply prefill: %v", err)
		}
	}

	htmlOpts := []htmldoc.Option{htmldoc.WithTheme(*themeName, *variant)}
	var pdfOpts []pdfdoc.Option
	if *fontPath != "" {
		pdfOpts = append(pdfOpts, pdfdoc.WithFontFile("sans", *fontPath))
	}
	registry, err := dealsheet.DefaultRegistry(htmlOpts, pdfOpts)
	if err != nil {
		log.Fatalf("configure renderers: %v", err)
	}

	ctx := context.Background()

	if !*nonInteractive {
		walker, err := prompt.NewWalker(prompt.NewSurveyDriver(), sess)
		if err != nil {
			log.Fatal(err)
		}
		generate, err := walker.Run(ctx)
		if err != nil {
			if errors.Is(err, prompt.ErrAborted) {
				fmt.Fprintln(os.Stderr, "cancelado")
				os.Exit(1)
			}
			log.Fatal(err)
		}
		if !generate {
			fmt.Println("documento no generado")
			return
		}
	}

	gen, err := export.New(sess,
		export.WithRegistry(registry),
		export.WithSurface(export.NewDirSurface(*out)),
	)
	if err != nil {
		log.Fatal(err)
	}

	artifacts, err := gen.GenerateAll(ctx, formats...)
	if err != nil {
		log.Fatalf("generate: %v", err)
	}
	for _, artifact := range artifacts {
		fmt.Printf("V%d -> %s\n", artifact.Version, artifact.Name)
	}
}

func parseFormats(format string) ([]string, error) {
	switch format {
	case "html", "pdf":
		return []string{format}, nil
	case "both":
		return []string{"html", "pdf"}, nil
	default:
		return nil, fmt.Errorf("unknown format %q (want html, pdf or both)", format)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
