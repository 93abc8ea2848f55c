// pdflayout projects the text of PDF files into plain text or
// positioned HTML markup, and can print a projection back to PDF via
// headless Chrome.
//
// Usage:
//
//	pdflayout extract [options] <file.pdf>
//	pdflayout render [options] <file.pdf>
//	pdflayout info <file.pdf>
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	pdflayout "github.com/porticus-lab/go-pdf-layout"
	"github.com/porticus-lab/go-pdf-layout/lpdf"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "extract":
		if err := runExtract(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "render":
		if err := runRender(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "info":
		if err := runInfo(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Print(`pdflayout - PDF text and layout projection tool

Usage:
  pdflayout extract [options] <file.pdf>
  pdflayout render [options] <file.pdf>
  pdflayout info <file.pdf>

Commands:
  extract   Project the PDF's text as plain text or positioned markup
  render    Print the layout projection back to a PDF via headless Chrome
  info      Display page count and per-page dimensions

Extract options:
  -m <mode>       Projection mode: text, layout (default: text)
  -f <format>     Output format: raw, json, markdown (default: raw)
  -p <range>      Page range, e.g. "1", "1-5", "1,3,5" (default: all)
  -o <file>       Write output to file (default: stdout)
  -standalone     Wrap layout markup in a full HTML document

Render options:
  -o <file>       Output PDF path (default: <input>.rendered.pdf)
  -chrome <path>  Path to the Chrome/Chromium executable
  -timeout <dur>  Render timeout, e.g. "45s" (default: 30s)
  -no-sandbox     Disable the Chrome sandbox (needed when running as root)
  -auto-download  Download a Chromium binary if none is installed

Examples:
  pdflayout extract document.pdf
  pdflayout extract -m layout -standalone -o page.html document.pdf
  pdflayout extract -p 1-10 -f json document.pdf > out.json
  pdflayout render -no-sandbox -o roundtrip.pdf document.pdf
  pdflayout info document.pdf
`)
}

// runExtract implements the "extract" command.
func runExtract(args []string) error {
	var (
		mode       = "text"
		format     = "raw"
		pageRange  string
		outputFile string
		standalone bool
		inputFile  string
	)

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-m":
			i++
			if i >= len(args) {
				return fmt.Errorf("-m requires an argument")
			}
			mode = args[i]
		case "-f":
			i++
			if i >= len(args) {
				return fmt.Errorf("-f requires an argument")
			}
			format = args[i]
		case "-p":
			i++
			if i >= len(args) {
				return fmt.Errorf("-p requires an argument")
			}
			pageRange = args[i]
		case "-o":
			i++
			if i >= len(args) {
				return fmt.Errorf("-o requires an argument")
			}
			outputFile = args[i]
		case "-standalone":
			standalone = true
		default:
			if strings.HasPrefix(args[i], "-") {
				return fmt.Errorf("unknown option: %s", args[i])
			}
			inputFile = args[i]
		}
	}

	if inputFile == "" {
		return fmt.Errorf("no input file specified")
	}
	m, err := pdflayout.ParseMode(mode)
	if err != nil {
		return err
	}

	doc, err := lpdf.Open(inputFile)
	if err != nil {
		return fmt.Errorf("opening %s: %w", inputFile, err)
	}

	pages, err := parsePageRange(pageRange, doc.PageCount())
	if err != nil {
		return fmt.Errorf("invalid page range %q: %w", pageRange, err)
	}
	var subset pdflayout.Document = &pageSubset{doc: doc, pages: pages}

	out := os.Stdout
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	ctx := context.Background()
	proj := pdflayout.NewProjector()

	switch format {
	case "raw":
		content, err := proj.Project(ctx, subset, m)
		if err != nil {
			return err
		}
		if standalone && m == pdflayout.ModeLayout {
			content = pdflayout.HTMLDocument(content)
		}
		fmt.Fprintln(out, content)
	case "json":
		type pageResult struct {
			Page    int    `json:"page"`
			Content string `json:"content"`
		}
		results := make([]pageResult, 0, len(pages))
		for _, num := range pages {
			content, err := proj.ProjectPage(ctx, doc, num, m)
			if err != nil {
				return err
			}
			results = append(results, pageResult{Page: num, Content: content})
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			return fmt.Errorf("encoding JSON: %w", err)
		}
	case "markdown":
		for _, num := range pages {
			content, err := proj.ProjectPage(ctx, doc, num, m)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "## Page %d\n\n%s\n\n", num, content)
		}
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	return nil
}

// runRender implements the "render" command.
func runRender(args []string) error {
	var (
		outputFile   string
		chromePath   string
		timeout      time.Duration
		noSandbox    bool
		autoDownload bool
		inputFile    string
	)

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-o":
			i++
			if i >= len(args) {
				return fmt.Errorf("-o requires an argument")
			}
			outputFile = args[i]
		case "-chrome":
			i++
			if i >= len(args) {
				return fmt.Errorf("-chrome requires an argument")
			}
			chromePath = args[i]
		case "-timeout":
			i++
			if i >= len(args) {
				return fmt.Errorf("-timeout requires an argument")
			}
			d, err := time.ParseDuration(args[i])
			if err != nil {
				return fmt.Errorf("invalid timeout %q: %w", args[i], err)
			}
			timeout = d
		case "-no-sandbox":
			noSandbox = true
		case "-auto-download":
			autoDownload = true
		default:
			if strings.HasPrefix(args[i], "-") {
				return fmt.Errorf("unknown option: %s", args[i])
			}
			inputFile = args[i]
		}
	}

	if inputFile == "" {
		return fmt.Errorf("no input file specified")
	}
	if outputFile == "" {
		outputFile = strings.TrimSuffix(inputFile, ".pdf") + ".rendered.pdf"
	}

	doc, err := lpdf.Open(inputFile)
	if err != nil {
		return fmt.Errorf("opening %s: %w", inputFile, err)
	}

	var opts []pdflayout.RendererOption
	if chromePath != "" {
		opts = append(opts, pdflayout.WithChromePath(chromePath))
	}
	if timeout > 0 {
		opts = append(opts, pdflayout.WithTimeout(timeout))
	}
	if noSandbox {
		opts = append(opts, pdflayout.WithNoSandbox())
	}
	if autoDownload {
		opts = append(opts, pdflayout.WithAutoDownload())
	}

	res, err := pdflayout.RenderDocument(context.Background(), doc, nil, opts...)
	if err != nil {
		return err
	}
	if err := res.WriteToFile(outputFile, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outputFile, err)
	}
	fmt.Printf("wrote %s (%d bytes)\n", outputFile, res.Len())
	return nil
}

// runInfo implements the "info" command.
func runInfo(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("no input file specified")
	}
	inputFile := args[0]

	doc, err := lpdf.Open(inputFile)
	if err != nil {
		return fmt.Errorf("opening %s: %w", inputFile, err)
	}

	n := doc.PageCount()
	fmt.Printf("File:  %s\n", inputFile)
	fmt.Printf("Pages: %d\n", n)

	if n > 0 {
		fmt.Println()
		fmt.Println("Page dimensions:")
		ctx := context.Background()
		for num := 1; num <= n; num++ {
			pg, err := doc.Page(ctx, num)
			if err != nil {
				fmt.Fprintf(os.Stderr, "warning: page %d: %v\n", num, err)
				continue
			}
			vp := pg.Viewport(1.0)
			fmt.Printf("  Page %d: %.0f x %.0f pt\n", num, vp.Width, vp.Height)
		}
	}

	return nil
}

// pageSubset exposes a selection of another document's pages as a
// document of its own, renumbered from 1.
type pageSubset struct {
	doc   pdflayout.Document
	pages []int // source page numbers, ascending
}

func (s *pageSubset) PageCount() int {
	return len(s.pages)
}

func (s *pageSubset) Page(ctx context.Context, number int) (pdflayout.Page, error) {
	if number < 1 || number > len(s.pages) {
		return nil, fmt.Errorf("page %d out of range 1-%d", number, len(s.pages))
	}
	return s.doc.Page(ctx, s.pages[number-1])
}

// parsePageRange converts a page range string to a slice of 1-based
// page numbers. Supported formats: "" (all), "3" (single page),
// "1-5" (range), "1,3,5" (list).
func parsePageRange(spec string, total int) ([]int, error) {
	if spec == "" {
		pages := make([]int, total)
		for i := range pages {
			pages[i] = i + 1
		}
		return pages, nil
	}

	var pages []int
	seen := make(map[int]bool)

	parts := strings.Split(spec, ",")
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if strings.Contains(part, "-") {
			bounds := strings.SplitN(part, "-", 2)
			if len(bounds) != 2 {
				return nil, fmt.Errorf("invalid range: %s", part)
			}
			start, err := strconv.Atoi(strings.TrimSpace(bounds[0]))
			if err != nil {
				return nil, fmt.Errorf("invalid page number: %s", bounds[0])
			}
			end, err := strconv.Atoi(strings.TrimSpace(bounds[1]))
			if err != nil {
				return nil, fmt.Errorf("invalid page number: %s", bounds[1])
			}
			if start < 1 || end > total || start > end {
				return nil, fmt.Errorf("page range %d-%d out of bounds (1-%d)", start, end, total)
			}
			for p := start; p <= end; p++ {
				if !seen[p] {
					pages = append(pages, p)
					seen[p] = true
				}
			}
		} else {
			p, err := strconv.Atoi(part)
			if err != nil {
				return nil, fmt.Errorf("invalid page number: %s", part)
			}
			if p < 1 || p > total {
				return nil, fmt.Errorf("page %d out of bounds (1-%d)", p, total)
			}
			if !seen[p] {
				pages = append(pages, p)
				seen[p] = true
			}
		}
	}

	return pages, nil
}
