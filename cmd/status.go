package cmd

import (
	"fmt"
	"time"

	"github.com/urfave/cli"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"github.com/pomod/pomod/common"
	"github.com/pomod/pomod/pkg/pomocli"
)

var statusFlags = []cli.Flag{
	cli.BoolFlag{
		Name:  "watch, w",
		Usage: "render a live countdown until the next phase boundary",
	},
}

// phaseTimer finds the phase-boundary trigger among the active timers.
func phaseTimer(timers *common.TimersResponse) (common.TimerInfo, bool) {
	for _, t := range timers.Timers {
		if t.Key == common.TimerKeyPomo {
			return t, true
		}
	}
	return common.TimerInfo{}, false
}

func status(ctx *cli.Context) error {
	client, err := getClient(ctx, "status")
	if err != nil {
		return nil
	}
	defer client.Close()

	st, err := client.State()
	if err != nil {
		printRuntimeErr(ctx, "status", "state", err)
		return nil
	}
	timers, err := client.Timers()
	if err != nil {
		printRuntimeErr(ctx, "status", "timers", err)
		return nil
	}

	if st.Phase == "idle" {
		fmt.Println("Phase: idle (no run in progress)")
		return nil
	}

	if ctx.Bool("watch") {
		return watchCountdown(client, st, timers)
	}

	fmt.Printf("Phase: %s\nCycle: %d\n", st.Phase, st.Cycle)
	if t, ok := phaseTimer(timers); ok {
		fmt.Printf("Next phase in %s (at %s)\n",
			formatCountdown(t.At, time.Now()),
			t.At.Format("15:04:05"),
		)
	}
	return nil
}

// watchCountdown renders a progress bar ticking down to the next phase
// boundary. It redraws once per second and exits at the boundary.
func watchCountdown(client *pomocli.Client, st *common.StateResponse, timers *common.TimersResponse) error {
	t, ok := phaseTimer(timers)
	if !ok {
		fmt.Println("No phase boundary pending")
		return nil
	}

	total := int64(time.Until(t.At).Round(time.Second).Seconds())
	if total <= 0 {
		fmt.Println("Phase boundary reached")
		return nil
	}

	p := mpb.New(mpb.WithWidth(40))
	barStyle := mpb.BarStyle().Lbound("╢").Filler("█").Tip("█").Padding("░").Rbound("╟")
	name := fmt.Sprintf("%s #%d", st.Phase, st.Cycle)
	bar := p.New(total,
		barStyle,
		mpb.PrependDecorators(
			decor.Name(name, decor.WC{W: len(name) + 1, C: decor.DindentRight}),
		),
		mpb.AppendDecorators(
			decor.Any(func(s decor.Statistics) string {
				return formatCountdown(t.At, time.Now())
			}),
		),
	)

	for time.Now().Before(t.At) {
		time.Sleep(time.Second)
		bar.Increment()
	}
	bar.SetTotal(total, true)
	p.Wait()
	return nil
}
