package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/maxwase/disasmd/disasm"
	"github.com/maxwase/disasmd/disasm/mos6502"
	"github.com/maxwase/disasmd/disasm/riscv"
	"github.com/maxwase/disasmd/disasm/x86"
	"github.com/maxwase/disasmd/format"
	"github.com/maxwase/disasmd/renderer"
)

var (
	ArchFlag = &cli.StringFlag{
		Name:     "arch",
		Usage:    "Target architecture. Options: mos6502, x86, riscv",
		Required: false,
		Value:    "mos6502",
	}
	WidthFlag = &cli.UintFlag{
		Name:     "width",
		Usage:    "Architecture bit width. Options: 8, 16, 32, 64",
		Required: false,
		Value:    8,
	}
	SyntaxFlag = &cli.StringFlag{
		Name:     "syntax",
		Usage:    "x86 assembly syntax. Options: intel, att",
		Required: false,
	}
	OffsetFlag = &cli.Uint64Flag{
		Name:     "offset",
		Usage:    "Address of the first instruction",
		Required: false,
	}
	NoAddressesFlag = &cli.BoolFlag{
		Name:     "no-addresses",
		Usage:    "Suppress the address column",
		Required: false,
		Value:    false,
	}
	LowerCaseFlag = &cli.BoolFlag{
		Name:     "lower-case",
		Usage:    "Render the listing in lower case",
		Required: false,
		Value:    false,
	}
	StopAtFlag = &cli.Uint64Flag{
		Name:     "stop-at",
		Usage:    "Address at which disassembly stops",
		Required: false,
	}
	CyclesFlag = &cli.BoolFlag{
		Name:     "cycles",
		Usage:    "Show instruction cycle counts (not supported by any architecture yet)",
		Required: false,
		Value:    false,
	}
	OutputFormatFlag = &cli.StringFlag{
		Name:        "format",
		Usage:       "format of the output. Options: json, text",
		Required:    false,
		DefaultText: "text",
	}
	OutputPathFlag = &cli.PathFlag{
		Name:     "output-path",
		Usage:    "output file path for the listing. Default: stdout",
		Required: false,
	}
)

var DisassembleCommand = &cli.Command{
	Name:        "disassemble",
	Usage:       "Disassemble a binary file",
	Description: "Disassembles the given file for the selected architecture and writes the listing",
	Action:      Disassemble,
	Flags: []cli.Flag{
		ArchFlag,
		WidthFlag,
		SyntaxFlag,
		OffsetFlag,
		NoAddressesFlag,
		LowerCaseFlag,
		StopAtFlag,
		CyclesFlag,
		OutputFormatFlag,
		OutputPathFlag,
	},
}

func Disassemble(ctx *cli.Context) error {
	source := ctx.Args().First()
	if source == "" {
		return fmt.Errorf("missing input file argument")
	}
	data, err := os.ReadFile(source)
	if err != nil {
		return fmt.Errorf("error reading input file: %w", err)
	}

	opts := buildOptions(ctx)

	lines, err := disassemble(ctx, data, opts)
	if err != nil {
		return fmt.Errorf("error disassembling the file: %w", err)
	}

	if err := writeListing(lines, ctx.String(OutputFormatFlag.Name), ctx.Path(OutputPathFlag.Name)); err != nil {
		return fmt.Errorf("unable to write listing: %w", err)
	}
	return nil
}

// buildOptions translates the command line flags into output options.
func buildOptions(ctx *cli.Context) format.Options {
	opts := format.New()
	if ctx.Bool(NoAddressesFlag.Name) {
		opts = opts.WithAddresses(format.ShowAddressNone())
	} else if ctx.IsSet(OffsetFlag.Name) {
		opts = opts.WithAddresses(format.ShowAddressStart(ctx.Uint64(OffsetFlag.Name)))
	}
	if ctx.IsSet(StopAtFlag.Name) {
		opts = opts.WithStop(ctx.Uint64(StopAtFlag.Name))
	}
	if ctx.Bool(LowerCaseFlag.Name) {
		opts = opts.WithUpperCase(false)
	}
	if ctx.Bool(CyclesFlag.Name) {
		opts = opts.WithCycles(true)
	}
	return opts
}

// disassemble dispatches to the selected architecture.
func disassemble(ctx *cli.Context, data []byte, opts format.Options) ([]string, error) {
	width := disasm.BitWidth(ctx.Uint(WidthFlag.Name))

	switch arch := ctx.String(ArchFlag.Name); arch {
	case "mos6502":
		lines, derr := mos6502.New().Disassemble(data, opts)
		if derr != nil {
			return nil, derr
		}
		return lines, nil
	case "x86":
		syntax := x86.SyntaxIntel
		if name := ctx.String(SyntaxFlag.Name); name != "" {
			var derr *disasm.Error[x86.Error]
			if syntax, derr = x86.ParseSyntax(name); derr != nil {
				return nil, derr
			}
		}
		dis, derr := x86.New(syntax, width)
		if derr != nil {
			return nil, derr
		}
		lines, derr := dis.Disassemble(data, opts)
		if derr != nil {
			return nil, derr
		}
		return lines, nil
	case "riscv":
		dis, derr := riscv.New(width)
		if derr != nil {
			return nil, derr
		}
		lines, derr := dis.Disassemble(data, opts)
		if derr != nil {
			return nil, derr
		}
		return lines, nil
	default:
		return nil, fmt.Errorf("invalid architecture: %s", arch)
	}
}

// writeListing outputs the listing in the specified format.
func writeListing(lines []string, format, outputPath string) error {
	var output *os.File
	if outputPath == "" {
		output = os.Stdout
	} else {
		absPath, err := filepath.Abs(outputPath)
		if err != nil {
			return fmt.Errorf("unable to determine absolute path: %w", err)
		}
		output, err = os.OpenFile(absPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("unable to open output file: %w", err)
		}
		defer func() {
			_ = output.Close()
		}()
	}

	var rendererInstance renderer.Renderer
	switch format {
	case "text", "":
		rendererInstance = renderer.NewTextRenderer()
	case "json":
		rendererInstance = renderer.NewJSONRenderer()
	default:
		return fmt.Errorf("invalid format: %s", format)
	}

	return rendererInstance.Render(lines, output)
}
