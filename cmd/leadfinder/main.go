package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cli/go-gh/v2/pkg/term"
	"go.uber.org/zap"

	"github.com/altinukshini/leadfinder/internal/tui"
)

var version = "dev"

func init() {
	if version != "dev" {
		return
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		version = info.Main.Version
	}
}

const usage = `Usage: leadfinder [flags] [command]

Commands:
  tui        interactive interface (default)
  run        run one search and print the leads
  history    list saved runs, optionally pruning them
  export     write saved runs as CSV files
  import     save a CSV file as a new run

Flags:
`

func main() {
	configPath := flag.String("config", "", "Settings file (default: user config dir/leadfinder/config.yaml)")
	envFile := flag.String("env", ".env", "Dotenv file with LEADFINDER_* overrides")
	debugLog := flag.Bool("debug", false, "Log debug output")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Println("leadfinder", version)
		os.Exit(0)
	}

	cmd, args := "tui", flag.Args()
	if len(args) > 0 {
		cmd, args = args[0], args[1:]
	}

	env, err := setup(options{configPath: *configPath, envFile: *envFile, debug: *debugLog})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer env.close()

	switch cmd {
	case "tui":
		err = runTUI(env)
	case "run":
		err = cmdRun(env, args)
	case "history":
		err = cmdHistory(env, args)
	case "export":
		err = cmdExport(env, args)
	case "import":
		err = cmdImport(env, args)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", cmd)
		flag.Usage()
		env.close()
		os.Exit(2)
	}
	if err != nil {
		env.log.Error("command failed", zap.String("command", cmd), zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		env.close()
		os.Exit(1)
	}
}

func runTUI(env *environment) error {
	if !term.FromEnv().IsTerminalOutput() {
		return fmt.Errorf("the interactive interface needs a terminal; see leadfinder -h for commands")
	}
	app := tui.NewApp(env.cfg, env.cfgPath, env.invoker, env.runs, env.log)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
