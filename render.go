package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mks/bonzo/audio"
	"github.com/mks/bonzo/riddim"
)

func kitCommand(env *env, args []riddim.Node) error {
	return renderKit(env, os.Stdout)
}

// renderKit draws the pattern grid: one row per instrument, beat icons
// above the grid and step numbers below. Patterns keep their own length,
// so polymetric rows come out shorter or longer than the bar.
func renderKit(env *env, w io.Writer) error {
	v, err := env.getProp("seq", "patterns")
	if err != nil {
		return err
	}
	patterns := v.(map[string]audio.Pattern)

	sig := env.timeSig
	var icons []string
	for i := 1; i <= sig.num; i++ {
		icons = append(icons, numIcon(i))
	}

	names := env.engine.Instruments()
	var maxNameLen int
	for _, name := range names {
		if len(name) > maxNameLen {
			maxNameLen = len(name)
		}
	}
	maxNameLen++

	const spacePerStep = 4
	spacing := (stepSize/sig.denom)*spacePerStep - 1
	beats := strings.Join(icons, strings.Repeat(" ", spacing))
	fmt.Fprintf(w, strings.Repeat(" ", maxNameLen)+"  ♩  %s\n", beats)

	for i, name := range names {
		level, err := env.getProp("kit", "level."+name)
		if err != nil {
			return err
		}
		speaker := "🔈"
		if level.(float64) <= -40 {
			speaker = "🔇"
		}

		pattern := patterns[name]
		if len(pattern) == 0 {
			pattern = make(audio.Pattern, env.patternSteps())
		}
		var steps string
		for _, v := range pattern {
			step := "⬜️"
			if v > 0 {
				step = "⬛️"
			}
			steps += step + "  "
		}

		row := fmt.Sprintf("%s %s %s\n", formatName(name, maxNameLen), speaker, steps)
		if i < len(names)-1 {
			row += "\n"
		}
		fmt.Fprintf(w, row)
	}

	var numbers string
	for step := 1; step <= env.patternSteps(); step++ {
		space := spacePerStep - 2
		if step < 9 {
			space++
		}
		numbers += strconv.Itoa(step) + strings.Repeat(" ", space)
	}
	numbers = colorize(numbers, colorMagenta)
	numbers = strings.Repeat(" ", maxNameLen) + "      " + numbers + "\n"
	fmt.Fprintf(w, numbers)
	return nil
}

func formatName(name string, max int) string {
	if len(name) > max {
		name = name[:max-1] + "…"
	}
	if len(name) < max {
		name += strings.Repeat(" ", max-len(name))
	}
	return colorize(name, colorBlue)
}

func numIcon(n int) string {
	// https://www.unicode.org/emoji/charts/full-emoji-list.html#0030_fe0f_20e3
	return string([]byte{48 + byte(n%10), 239, 184, 143, 226, 131, 163})
}

const (
	colorBlack = iota + 30
	colorRed
	colorGreen
	colorYellow
	colorBlue
	colorMagenta
)

func colorize(text string, color int) string {
	return fmt.Sprintf("\033[%dm%s\033[0m", color, text)
}
