package cmd

import (
	"fmt"

	"github.com/urfave/cli"
)

func start(ctx *cli.Context) error {
	client, err := getClient(ctx, "start")
	if err != nil {
		return nil
	}
	defer client.Close()

	st, err := client.Start()
	if err != nil {
		printRuntimeErr(ctx, "start", "invoke", err)
		return nil
	}
	fmt.Printf("Pomodoro started: %s phase, cycle %d\n", st.Phase, st.Cycle)
	return nil
}

func stop(ctx *cli.Context) error {
	client, err := getClient(ctx, "stop")
	if err != nil {
		return nil
	}
	defer client.Close()

	if err := client.Stop(); err != nil {
		printRuntimeErr(ctx, "stop", "invoke", err)
		return nil
	}
	fmt.Println("Pomodoro stopped")
	return nil
}

func next(ctx *cli.Context) error {
	client, err := getClient(ctx, "next")
	if err != nil {
		return nil
	}
	defer client.Close()

	st, err := client.ScheduleNext()
	if err != nil {
		printRuntimeErr(ctx, "next", "invoke", err)
		return nil
	}
	fmt.Printf("Now in %s phase, cycle %d\n", st.Phase, st.Cycle)
	return nil
}

func sound(ctx *cli.Context) error {
	client, err := getClient(ctx, "sound")
	if err != nil {
		return nil
	}
	defer client.Close()

	if err := client.TestSound(); err != nil {
		printRuntimeErr(ctx, "sound", "invoke", err)
		return nil
	}
	fmt.Println("Played notification sound")
	return nil
}
