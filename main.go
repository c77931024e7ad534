package main

// Entry point. The application logic is split across:
// - app_core.go: application structure and initialization
// - app_handlers.go: handlers for user interactions
// - app_menus.go: menu and shortcut setup
//
// Running without a subcommand opens the GUI editor; `export` composes
// a folder headlessly.

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"flipbook-creator/compose"
	"flipbook-creator/config"
	"flipbook-creator/logger"
	"flipbook-creator/pipeline"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig() config.Config {
	path, err := config.DefaultPath()
	if err != nil {
		return config.Default()
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return config.Default()
	}
	return cfg
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "flipbook-creator",
		Short:   "Arrange images into a flipbook texture",
		Version: AppVersion,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			log := logger.New(logger.ParseLevel(cfg.LogLevel))
			NewFlipbookApp(cfg, log).Run()
			return nil
		},
	}
	root.AddCommand(newExportCmd())
	return root
}

func newExportCmd() *cobra.Command {
	var (
		dir        string
		out        string
		columns    int
		rows       int
		scale      int
		background string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Compose a folder of images into a flipbook without opening the GUI",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			log := logger.New(logger.ParseLevel(cfg.LogLevel))

			loader := pipeline.NewLoader(log)
			entries, err := loader.LoadFolder(dir)
			if err != nil {
				return err
			}

			grid := compose.GridSpec{Columns: columns, Rows: rows}
			if columns < 1 || rows < 1 {
				r, c := compose.MinGrid(len(entries))
				grid = compose.GridSpec{Columns: r, Rows: c}
			}

			bg := compose.Background{Mode: compose.BackgroundTransparent}
			if background != "" {
				c, err := parseHexColor(background)
				if err != nil {
					return err
				}
				bg = compose.Background{Mode: compose.BackgroundSolid, Color: c}
			}

			spec := compose.RenderSpec{
				Grid:         grid.ClampFor(len(entries)),
				ScalePercent: scale,
				Background:   bg,
			}
			return pipeline.NewExporter(log).ExportFile(out, entries, spec)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "folder of source images")
	cmd.Flags().StringVar(&out, "out", "", "output file; the extension selects the format")
	cmd.Flags().IntVar(&columns, "columns", 0, "grid columns (0 = auto)")
	cmd.Flags().IntVar(&rows, "rows", 0, "grid rows (0 = auto)")
	cmd.Flags().IntVar(&scale, "scale", 100, "output scale percentage, 1-100")
	cmd.Flags().StringVar(&background, "background", "", "solid background as RRGGBB or RRGGBBAA hex (empty = transparent)")
	_ = cmd.MarkFlagRequired("dir")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func parseHexColor(s string) (color.NRGBA, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 && len(s) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: want RRGGBB or RRGGBBAA", s)
	}
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	if len(s) == 6 {
		v = v<<8 | 0xff
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
