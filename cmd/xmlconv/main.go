package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/xmlconv/xmlconv"
)

// CLI defines the command-line interface
var CLI struct {
	Input             string `help:"Path to input XML file. If not specified, reads from stdin." short:"i" type:"path"`
	Output            string `help:"Path to output JSON file. If not specified, writes to stdout." short:"o" type:"path"`
	Config            string `help:"Path to a YAML config file. When omitted, an .xmlconv.yml is searched for in the current directory and its parents." short:"c" type:"path"`
	AttrPrefix        string `help:"Prefix for JSON properties derived from XML attributes." default:"@"`
	TextProp          string `help:"Property name for the text of elements that also have attributes or children." default:"#text"`
	LeadingZeroString bool   `help:"Keep numeric values with a leading zero (e.g. 007) as strings."`
	NullPolicy        string `help:"How empty elements are represented." enum:"null,ignore" default:"null"`
	KeyCase           string `help:"Transform applied to JSON property names." enum:"asis,camel,pascal,snake" default:"asis"`
	Compact           bool   `help:"Emit compact JSON instead of indented output."`
	Indent            string `help:"Indent string for pretty-printed output." default:"  "`
	Version           bool   `help:"Show version information." short:"v"`
	Interactive       bool   `help:"Run in interactive mode, allowing direct XML input with Ctrl+D to process." short:"I"`
}

// Context holds the runtime context
type Context struct {
	Config *xmlconv.Config
}

// Version information
const (
	Version = "0.1.0"
)

func main() {
	parser := kong.Must(&CLI,
		kong.Name("xmlconv"),
		kong.Description("A tool to convert XML documents to JSON"),
		kong.UsageOnError(),
	)

	// With no arguments and a terminal on stdin, drop into interactive mode
	if len(os.Args) == 1 {
		CLI.Interactive = true
	}

	_, err := parser.Parse(os.Args[1:])
	if err != nil {
		// Usage is already shown by kong.UsageOnError()
		os.Exit(1)
	}

	if CLI.Version {
		fmt.Printf("xmlconv version %s\n", Version)
		return
	}

	cfg, err := buildConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", xmlconv.UserFriendlyError(err))
		os.Exit(1)
	}

	if err := run(&Context{Config: cfg}); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", xmlconv.UserFriendlyError(err))
		fmt.Fprintf(os.Stderr, "\nFor help, run: xmlconv --help\n")
		os.Exit(1)
	}
}

// buildConfig assembles the conversion config from the YAML config file (if
// any) with CLI flags layered on top. Flags left at their defaults don't
// override file settings.
func buildConfig() (*xmlconv.Config, error) {
	configPath := CLI.Config
	if configPath == "" {
		configPath = xmlconv.FindConfigFile()
	}

	cfg := xmlconv.NewConfig()
	if configPath != "" {
		fileCfg, err := xmlconv.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = fileCfg
	}

	if CLI.AttrPrefix != "@" {
		cfg.AttrPrefix = CLI.AttrPrefix
	}
	if CLI.TextProp != "#text" {
		cfg.TextPropName = CLI.TextProp
	}
	if CLI.LeadingZeroString {
		cfg.LeadingZeroAsString = true
	}
	if CLI.NullPolicy == "ignore" {
		cfg.NullValue = xmlconv.NullValueIgnore
	}
	if CLI.KeyCase != "asis" {
		cfg.KeyCase = xmlconv.KeyCase(CLI.KeyCase)
	}

	return cfg, nil
}

// run executes the main program logic
func run(ctx *Context) error {
	// 1. Parse and convert the XML input
	value, err := convertInput(ctx.Config)
	if err != nil {
		return err
	}

	// 2. Render the JSON value tree
	out, err := renderJSON(value)
	if err != nil {
		return xmlconv.NewOutputError("failed to render JSON", err)
	}

	// 3. Output the result
	return writeOutput(out)
}

// convertInput reads XML from file or stdin and converts it
func convertInput(cfg *xmlconv.Config) (xmlconv.JSONValue, error) {
	if CLI.Input != "" {
		return xmlconv.ConvertFile(CLI.Input, cfg)
	}

	stdinInfo, err := os.Stdin.Stat()
	if err != nil {
		return nil, xmlconv.NewInputError("failed to access stdin", err)
	}

	if (stdinInfo.Mode() & os.ModeCharDevice) != 0 {
		// Terminal is interactive (not piped)
		if CLI.Interactive {
			return readInteractiveInput(cfg)
		}
		return nil, xmlconv.NewInputError("no input provided", xmlconv.ErrNoInput)
	}

	// Piped input
	return xmlconv.ConvertReader(os.Stdin, cfg)
}

// renderJSON serializes the value tree to text
func renderJSON(value xmlconv.JSONValue) ([]byte, error) {
	if CLI.Compact {
		return json.Marshal(value)
	}
	return json.MarshalIndent(value, "", CLI.Indent)
}

// writeOutput writes the JSON text to file or stdout
func writeOutput(out []byte) error {
	if CLI.Output != "" {
		err := os.WriteFile(CLI.Output, append(out, '\n'), 0644)
		if err != nil {
			return xmlconv.NewOutputError(fmt.Sprintf("failed to write to file '%s'", CLI.Output), err)
		}
		fmt.Fprintf(os.Stderr, "JSON written to %s\n", CLI.Output)
		return nil
	}

	_, err := fmt.Println(string(out))
	if err != nil {
		return xmlconv.NewOutputError("failed to write to stdout", err)
	}
	return nil
}

// readInteractiveInput provides an interactive mode for users to paste XML
// and signal completion with Ctrl+D (EOF)
func readInteractiveInput(cfg *xmlconv.Config) (xmlconv.JSONValue, error) {
	fmt.Fprintln(os.Stderr, "xmlconv Interactive Mode")
	fmt.Fprintln(os.Stderr, "Paste your XML below and press Ctrl+D (or Ctrl+Z on Windows) when done:")

	reader := bufio.NewReader(os.Stdin)
	var xmlBuilder strings.Builder

	for {
		line, err := reader.ReadString('\n')
		xmlBuilder.WriteString(line)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, xmlconv.NewInputError("error reading input", err)
		}
	}

	xmlData := xmlBuilder.String()
	if strings.TrimSpace(xmlData) == "" {
		return nil, xmlconv.NewInputError("empty input received", xmlconv.ErrEmptyInput)
	}

	fmt.Fprintln(os.Stderr, "\nProcessing XML...")
	return xmlconv.ConvertString(xmlData, cfg)
}
