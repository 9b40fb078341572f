package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/specimen/backend/page"
	"github.com/npillmayer/specimen/engine/dom"
	"github.com/npillmayer/specimen/engine/dom/xpathadapter"
	htmlinput "github.com/npillmayer/specimen/input/html"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"golang.org/x/net/html"
)

var (
	queryFlags       pageFlags
	queryXPath       bool
	queryInteractive bool
	queryFile        string
)

var queryCmd = &cobra.Command{
	Use:   "query [selector]",
	Short: "Query the page with CSS selectors or XPath",
	Long: `query builds the page and prints the elements matching a CSS selector,
or an XPath expression with --xpath. With -i, queries are read interactively:

    css <selector>    elements matching a CSS selector
    xpath <expr>      nodes matching an XPath expression
    eval <expr>       value of an XPath expression, e.g. count(//section)
    help              list commands
    quit              leave (or <ctrl>D)

Lines without a command word are CSS selectors. With --file, a page
written by render is queried instead of a freshly built one.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := queryDocument(cmd)
		if err != nil {
			return err
		}
		intp := &Intp{doc: doc, out: os.Stdout}
		if queryInteractive {
			return intp.REPL()
		}
		if len(args) == 0 {
			return fmt.Errorf("query needs a selector, or -i for interactive mode")
		}
		op := "css"
		if queryXPath {
			op = "xpath"
		}
		_, err = intp.execute(op + " " + args[0])
		return err
	},
}

func init() {
	queryFlags.register(queryCmd)
	queryCmd.Flags().BoolVar(&queryXPath, "xpath", false, "argument is an XPath expression")
	queryCmd.Flags().BoolVarP(&queryInteractive, "interactive", "i", false, "read queries interactively")
	queryCmd.Flags().StringVar(&queryFile, "file", "", "query an HTML file instead of building the page")
}

func queryDocument(cmd *cobra.Command) (*html.Node, error) {
	if queryFile != "" {
		return htmlinput.ReadFile(queryFile)
	}
	pconf, err := queryFlags.config(cmd.Context())
	if err != nil {
		return nil, err
	}
	return page.Document(pconf), nil
}

// Intp is our interpreter object.
type Intp struct {
	doc  *html.Node
	out  io.Writer
	repl *readline.Instance
}

// REPL starts interactive mode.
func (intp *Intp) REPL() error {
	repl, err := readline.New("specimen > ")
	if err != nil {
		return err
	}
	defer repl.Close()
	intp.repl = repl
	pterm.Info.Println("Quit with <ctrl>D")
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.execute(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
	return nil
}

func (intp *Intp) execute(line string) (quit bool, err error) {
	op, arg := splitCommand(line)
	tracer().Debugf("query %s %q", op, arg)
	switch op {
	case "quit", "exit":
		return true, nil
	case "help":
		fmt.Fprintln(intp.out, "commands: css <selector> | xpath <expr> | eval <expr> | quit")
	case "css":
		nodes, err := dom.Select(intp.doc, arg)
		if err != nil {
			return false, err
		}
		intp.list(nodes)
	case "xpath":
		nodes, err := xpathadapter.Query(intp.doc, arg)
		if err != nil {
			return false, err
		}
		intp.list(nodes)
	case "eval":
		v, err := xpathadapter.Evaluate(intp.doc, arg)
		if err != nil {
			return false, err
		}
		fmt.Fprintf(intp.out, "%v\n", v)
	}
	return false, nil
}

func splitCommand(line string) (string, string) {
	line = strings.TrimSpace(line)
	word, rest := line, ""
	if i := strings.IndexAny(line, " \t"); i > 0 {
		word, rest = line[:i], strings.TrimSpace(line[i+1:])
	}
	switch word {
	case "css", "xpath", "eval", "help", "quit", "exit":
		return word, rest
	}
	return "css", line
}

const maxListedText = 48

func (intp *Intp) list(nodes []*html.Node) {
	for i, n := range nodes {
		fmt.Fprintf(intp.out, "[%3d] %s", i, describe(n))
		if text := strings.Join(strings.Fields(dom.TextContent(n)), " "); text != "" {
			if r := []rune(text); len(r) > maxListedText {
				text = string(r[:maxListedText]) + "…"
			}
			fmt.Fprintf(intp.out, "  %q", text)
		}
		fmt.Fprintln(intp.out)
	}
	fmt.Fprintf(intp.out, "%d matches\n", len(nodes))
}

// describe formats an element like a start tag, with id and class only.
func describe(n *html.Node) string {
	switch n.Type {
	case html.TextNode:
		return "#text"
	case html.ElementNode:
	default:
		return "#node"
	}
	var b strings.Builder
	b.WriteString("<" + n.Data)
	for _, key := range []string{"id", "class"} {
		if v, ok := dom.AttrValue(n, key); ok {
			fmt.Fprintf(&b, " %s=%q", key, v)
		}
	}
	b.WriteString(">")
	return b.String()
}
