package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ebalint/taskdeck/internal/cli"
	"github.com/ebalint/taskdeck/internal/config"
	"github.com/ebalint/taskdeck/internal/model"
	"github.com/ebalint/taskdeck/internal/store"
	"github.com/ebalint/taskdeck/internal/store/kv"
	"github.com/ebalint/taskdeck/internal/ui"
)

func main() {
	// Root flags (apply to every subcommand)
	groupPending := flag.Bool("group", false, "group output by pending/done")
	themeFlag := flag.String("theme", "", "color theme: classic|neon|mono")
	configFlag := flag.String("config", "", "config file path")
	flag.Parse()

	cfgPath := *configFlag
	if cfgPath == "" {
		if p, err := config.DefaultPath(); err == nil {
			cfgPath = p
		}
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		// A broken config should not block the tool; run with defaults.
		fmt.Fprintln(os.Stderr, "config:", err)
	}

	theme := cfg.Theme
	if *themeFlag != "" {
		theme = *themeFlag
	}
	ui.SetTheme(theme)

	dataPath, err := cfg.DataPath()
	if err != nil {
		fmt.Fprintln(os.Stderr, "data path:", err)
		os.Exit(1)
	}
	defaultSort, _ := model.ParseSortOption(cfg.DefaultSort)
	tasks := store.New(store.NewKVPersister(kv.NewFileKV(dataPath)), defaultSort)

	// Hand the remaining args to the CLI runner.
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintHelp()
		os.Exit(2)
	}

	code := cli.Run(tasks, args, cli.Options{
		Group:    *groupPending,
		DataPath: dataPath,
	})
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}
