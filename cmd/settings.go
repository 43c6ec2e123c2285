package cmd

import (
	"errors"
	"fmt"

	"github.com/urfave/cli"

	"github.com/pomod/pomod/common"
)

var settingsSetFlags = []cli.Flag{
	cli.IntFlag{
		Name:  "focus, f",
		Usage: "focus interval length in minutes",
	},
	cli.IntFlag{
		Name:  "short, s",
		Usage: "short break length in minutes",
	},
	cli.IntFlag{
		Name:  "long, l",
		Usage: "long break length in minutes",
	},
	cli.IntFlag{
		Name:  "every, e",
		Usage: "take a long break after every N focus intervals",
	},
	cli.BoolFlag{
		Name:  "sound",
		Usage: "play a sound with notifications",
	},
	cli.BoolFlag{
		Name:  "no-sound",
		Usage: "disable the notification sound",
	},
}

func settingsShow(ctx *cli.Context) error {
	client, err := getClient(ctx, "settings")
	if err != nil {
		return nil
	}
	defer client.Close()

	s, err := client.GetSettings()
	if err != nil {
		printRuntimeErr(ctx, "settings", "invoke", err)
		return nil
	}
	soundState := "off"
	if s.Sound {
		soundState = "on"
	}
	fmt.Printf("Focus:       %d min\n", s.FocusMinutes)
	fmt.Printf("Short break: %d min\n", s.ShortBreakMinutes)
	fmt.Printf("Long break:  %d min (every %d cycles)\n", s.LongBreakMinutes, s.LongBreakEvery)
	fmt.Printf("Sound:       %s\n", soundState)
	fmt.Printf("Reminders:   %d\n", len(s.Reminders))
	return nil
}

func settingsSet(ctx *cli.Context) error {
	var params common.SetSettingsParams
	if ctx.IsSet("focus") {
		v := ctx.Int("focus")
		params.FocusMinutes = &v
	}
	if ctx.IsSet("short") {
		v := ctx.Int("short")
		params.ShortBreakMinutes = &v
	}
	if ctx.IsSet("long") {
		v := ctx.Int("long")
		params.LongBreakMinutes = &v
	}
	if ctx.IsSet("every") {
		v := ctx.Int("every")
		params.LongBreakEvery = &v
	}
	if ctx.Bool("sound") && ctx.Bool("no-sound") {
		return printErrWithCmdHelp(ctx, errors.New("--sound and --no-sound are mutually exclusive"))
	}
	if ctx.Bool("sound") {
		v := true
		params.Sound = &v
	}
	if ctx.Bool("no-sound") {
		v := false
		params.Sound = &v
	}
	if params == (common.SetSettingsParams{}) {
		return printErrWithCmdHelp(ctx, errors.New("nothing to change"))
	}

	client, err := getClient(ctx, "settings set")
	if err != nil {
		return nil
	}
	defer client.Close()

	if _, err := client.SetSettings(&params); err != nil {
		printRuntimeErr(ctx, "settings set", "invoke", err)
		return nil
	}
	return settingsShow(ctx)
}
