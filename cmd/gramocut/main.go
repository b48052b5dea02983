package main

import (
	"flag"
	"fmt"
	"os"

	"gioui.org/app"
	"github.com/vsariola/gramocut/cmd"
	"github.com/vsariola/gramocut/editor"
	"github.com/vsariola/gramocut/editor/gioui"
	"github.com/vsariola/gramocut/version"
	"go.uber.org/zap"
)

var configFile = flag.String("config", "", "read editor settings from `file` instead of the user config dir")
var logFile = flag.String("log", cmd.DefaultLogFile(), "write a rotating log to `file`, empty to disable")
var logLevel = flag.String("loglevel", "info", "log level: debug, info, warn or error")
var showVersion = flag.Bool("version", false, "print version and exit")

func main() {
	flag.Parse()
	if *showVersion {
		fmt.Println(version.Describe("gramocut"))
		os.Exit(0)
	}
	logger, err := cmd.NewLogger(cmd.LogConfig{Level: *logLevel, File: *logFile, MaxSizeMB: 10, MaxBackups: 3})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger.Info("starting", zap.String("version", version.VersionOrHash))

	var config editor.Config
	if *configFile != "" {
		config, err = editor.LoadConfigFile(*configFile)
	} else {
		config, err = editor.LoadConfig()
	}
	broker := editor.NewBroker()
	model := editor.NewModel(broker, logger, config)
	if err != nil {
		logger.Warn("using default config", zap.Error(err))
		model.Alerts().Add("Config", fmt.Sprintf("config: %v", err), editor.Warning)
	}
	if a := flag.Args(); len(a) > 0 {
		model.LoadFile(a[0])
	}

	editorUi := gioui.NewGUI(model, logger)
	go func() {
		editorUi.Main()
		logger.Info("exiting")
		logger.Sync()
		os.Exit(0)
	}()
	app.Main()
}
