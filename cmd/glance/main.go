package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/glancedev/glance/internal/config"
	"github.com/glancedev/glance/internal/deps"
	"github.com/glancedev/glance/internal/grid"
	"github.com/glancedev/glance/internal/log"
	"github.com/glancedev/glance/internal/shell"
	"github.com/glancedev/glance/internal/store"
	"github.com/glancedev/glance/internal/term"
	"github.com/glancedev/glance/internal/thumb"
	"github.com/glancedev/glance/internal/ui"
	"github.com/glancedev/glance/internal/ui/theme"
	"github.com/glancedev/glance/pkg/version"
)

var (
	columnsFlag  int
	textFlag     bool
	cacheDirFlag string
	debugFlag    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, theme.ErrorStyle.Render(err.Error()))
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "glance [dir | image...]",
	Short: "Browse images as an inline thumbnail grid in the terminal",
	Args:  cobra.ArbitraryArgs,
	RunE:  runRoot,
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.Flags().IntVarP(&columnsFlag, "columns", "c", 0, "Grid columns (invalid values fall back to the default)")
	rootCmd.Flags().BoolVar(&textFlag, "text", false, "Force the text fallback even on graphics-capable terminals")
	rootCmd.PersistentFlags().StringVar(&cacheDirFlag, "cache-dir", "", "Directory for generated thumbnails")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Write debug logging to the session log file")

	rootCmd.AddCommand(cleanCmd)
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("columns") {
		cfg.Columns = columnsFlag
	}
	if cacheDirFlag != "" {
		cfg.CacheDir = cacheDirFlag
	}
	cfg.Normalize()
	return cfg, nil
}

func ensureDeps() error {
	missing := deps.Check()
	if len(missing) == 0 {
		return nil
	}
	for _, dep := range missing {
		fmt.Fprintf(os.Stderr, "Missing dependency: %s (%s)\n", dep.Name, deps.InstallHint(dep))
	}
	return fmt.Errorf("missing required dependencies")
}

// loadItems resolves the positional arguments: no args browses the
// current directory, a single directory arg browses it, anything else is
// treated as an explicit image list in the given order.
func loadItems(args []string) (*store.List, error) {
	if len(args) == 0 {
		return store.LoadDir(".")
	}
	if len(args) == 1 {
		if info, err := os.Stat(args[0]); err == nil && info.IsDir() {
			return store.LoadDir(args[0])
		}
	}
	return store.LoadPaths(args)
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log.Init(cfg.CacheDir, debugFlag)

	list, err := loadItems(args)
	if err != nil {
		return err
	}
	log.Infof("loaded %d items, %d columns", len(list.Items), cfg.Columns)

	if textFlag || !term.SupportsGraphics() {
		return ui.RunFallback(list, cfg.Columns)
	}
	return runInline(cfg, list)
}

func runInline(cfg *config.Config, list *store.List) error {
	if err := ensureDeps(); err != nil {
		return err
	}

	gen := thumb.NewMagick(&shell.ExecCommander{}, cfg.MagickBin, cfg.CacheDir)
	list.AttachThumbnails(gen, cfg.ThumbWidth, cfg.ThumbHeight)
	defer list.Release(gen)

	restore, err := term.MakeRaw()
	if err != nil {
		return fmt.Errorf("raw mode: %w", err)
	}
	defer restore()

	out := bufio.NewWriter(os.Stdout)
	kitty := term.NewKitty(out)
	defer func() {
		kitty.DeleteImages()
		kitty.Clear()
		out.Flush()
	}()

	session := &ui.Session{
		List:        list,
		Layout:      grid.DefaultLayout(cfg.Columns),
		Gen:         gen,
		Drawer:      kitty,
		Input:       term.NewInput(os.Stdin),
		SizeFn:      term.Size,
		Flush:       func() { out.Flush() },
		FocusWidth:  cfg.FocusWidth,
		FocusHeight: cfg.FocusHeight,
	}
	return session.Run()
}

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove every cached thumbnail render",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		removed, err := thumb.Purge(cfg.CacheDir)
		if err != nil {
			return err
		}
		fmt.Printf("Removed %d cached renders\n", removed)
		return nil
	},
}
