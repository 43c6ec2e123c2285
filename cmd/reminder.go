package cmd

import (
	"errors"
	"fmt"

	"github.com/urfave/cli"
)

var reminderAddFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "time, t",
		Usage: "daily wall time in 24-hour HH:MM form",
	},
	cli.StringFlag{
		Name:  "label, l",
		Usage: "notification text",
	},
}

var reminderSetFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "time, t",
		Usage: "new daily wall time in 24-hour HH:MM form",
	},
	cli.StringFlag{
		Name:  "label, l",
		Usage: "new notification text",
	},
}

func reminderAdd(ctx *cli.Context) error {
	clock := ctx.String("time")
	if clock == "" {
		return printErrWithCmdHelp(ctx, errors.New("--time is required"))
	}
	client, err := getClient(ctx, "reminder add")
	if err != nil {
		return nil
	}
	defer client.Close()

	r, err := client.AddReminder(ctx.String("label"), clock)
	if err != nil {
		printRuntimeErr(ctx, "reminder add", "invoke", err)
		return nil
	}
	fmt.Printf("Added reminder %s: %q at %s daily\n", r.Id, r.Label, r.Time)
	return nil
}

func reminderList(ctx *cli.Context) error {
	client, err := getClient(ctx, "reminder list")
	if err != nil {
		return nil
	}
	defer client.Close()

	settings, err := client.GetSettings()
	if err != nil {
		printRuntimeErr(ctx, "reminder list", "invoke", err)
		return nil
	}
	if len(settings.Reminders) == 0 {
		fmt.Println("No reminders configured")
		return nil
	}
	for _, r := range settings.Reminders {
		fmt.Printf("%s  %s  %s\n", r.Id, r.Time, r.Label)
	}
	return nil
}

func reminderSet(ctx *cli.Context) error {
	id := ctx.Args().First()
	if id == "" {
		return printErrWithCmdHelp(ctx, errors.New("reminder id is required"))
	}
	var label, clock *string
	if ctx.IsSet("label") {
		v := ctx.String("label")
		label = &v
	}
	if ctx.IsSet("time") {
		v := ctx.String("time")
		clock = &v
	}
	if label == nil && clock == nil {
		return printErrWithCmdHelp(ctx, errors.New("nothing to change: pass --label and/or --time"))
	}

	client, err := getClient(ctx, "reminder set")
	if err != nil {
		return nil
	}
	defer client.Close()

	if err := client.UpdateReminder(id, label, clock); err != nil {
		printRuntimeErr(ctx, "reminder set", "invoke", err)
		return nil
	}
	fmt.Printf("Updated reminder %s\n", id)
	return nil
}

func reminderRemove(ctx *cli.Context) error {
	id := ctx.Args().First()
	if id == "" {
		return printErrWithCmdHelp(ctx, errors.New("reminder id is required"))
	}
	client, err := getClient(ctx, "reminder remove")
	if err != nil {
		return nil
	}
	defer client.Close()

	if err := client.RemoveReminder(id); err != nil {
		printRuntimeErr(ctx, "reminder remove", "invoke", err)
		return nil
	}
	fmt.Printf("Removed reminder %s\n", id)
	return nil
}
