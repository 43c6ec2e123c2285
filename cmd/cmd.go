// Package cmd implements the pomod command-line interface: the daemon
// entry point and the client commands that drive it over the socket.
package cmd

import (
	"fmt"
	"runtime"

	"github.com/urfave/cli"
)

// BuildArgs carries build-time metadata injected by the linker.
type BuildArgs struct {
	Version   string
	BuildType string
	Date      string
	Commit    string
}

var currentBuildArgs BuildArgs

// Execute runs the CLI with the given arguments.
func Execute(args []string, bArgs BuildArgs) error {
	currentBuildArgs = bArgs
	app := cli.App{
		Name:                  "pomod",
		HelpName:              "pomod",
		Usage:                 "A pomodoro daemon for your desktop.",
		Version:               fmt.Sprintf("%s-%s", bArgs.Version, bArgs.BuildType),
		UsageText:             "pomod <command> [arguments...]",
		Description:           DESCRIPTION,
		CustomAppHelpTemplate: HELP_TEMPL,
		OnUsageError:          usageErrorCallback,
		Commands: []cli.Command{
			{
				Name:   "daemon",
				Usage:  "run the pomod daemon in the foreground",
				Action: daemon,
			},
			{
				Name:   "stop-daemon",
				Usage:  "stop a running daemon",
				Action: stopDaemon,
			},
			{
				Name:               "start",
				Aliases:            []string{"s"},
				Usage:              "begin a pomodoro run",
				Action:             start,
				OnUsageError:       usageErrorCallback,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Description:        StartDescription,
			},
			{
				Name:               "stop",
				Usage:              "end the current run",
				Action:             stop,
				OnUsageError:       usageErrorCallback,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Description:        StopDescription,
			},
			{
				Name:               "next",
				Aliases:            []string{"n"},
				Usage:              "skip to the next phase",
				Action:             next,
				OnUsageError:       usageErrorCallback,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Description:        NextDescription,
			},
			{
				Name:                   "status",
				Aliases:                []string{"st"},
				Usage:                  "show the current phase and countdown",
				Action:                 status,
				OnUsageError:           usageErrorCallback,
				CustomHelpTemplate:     CMD_HELP_TEMPL,
				Description:            StatusDescription,
				UseShortOptionHandling: true,
				Flags:                  statusFlags,
			},
			{
				Name:               "popup",
				Aliases:            []string{"p"},
				Usage:              "open the interactive countdown view",
				Action:             popup,
				OnUsageError:       usageErrorCallback,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Description:        PopupDescription,
			},
			{
				Name:               "reminder",
				Aliases:            []string{"r"},
				Usage:              "manage daily reminders",
				Description:        ReminderDescription,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Subcommands: []cli.Command{
					{
						Name:   "add",
						Usage:  "add a daily reminder",
						Action: reminderAdd,
						Flags:  reminderAddFlags,
					},
					{
						Name:    "list",
						Aliases: []string{"ls"},
						Usage:   "list configured reminders",
						Action:  reminderList,
					},
					{
						Name:   "set",
						Usage:  "change a reminder's label or time",
						Action: reminderSet,
						Flags:  reminderSetFlags,
					},
					{
						Name:    "remove",
						Aliases: []string{"rm"},
						Usage:   "remove a reminder by id",
						Action:  reminderRemove,
					},
				},
			},
			{
				Name:               "settings",
				Usage:              "show or change timer settings",
				Action:             settingsShow,
				OnUsageError:       usageErrorCallback,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Description:        SettingsDescription,
				Subcommands: []cli.Command{
					{
						Name:   "set",
						Usage:  "change timer settings",
						Action: settingsSet,
						Flags:  settingsSetFlags,
					},
				},
			},
			{
				Name:   "sound",
				Usage:  "play the notification sound once",
				Action: sound,
			},
			{
				Name:    "help",
				Aliases: []string{"h"},
				Usage:   "prints the help message",
				Action:  help,
			},
			{
				Name:      "version",
				Aliases:   []string{"v"},
				Usage:     "prints the installed version of pomod",
				UsageText: " ",
				Action:    getVersion,
			},
		},
		Action:       status,
		Flags:        statusFlags,
		HideHelp:     true,
		HideVersion:  true,
	}
	versionCmdStr = fmt.Sprintf("%s %s (%s_%s)\nBuild: %s=%s\n",
		app.Name,
		app.Version,
		runtime.GOOS,
		runtime.GOARCH,
		bArgs.Date, bArgs.Commit,
	)
	return app.Run(args)
}
