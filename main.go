package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/mks/bonzo/audio"
)

func main() {
	var (
		bpm    = flag.Float64("bpm", 120, "")
		beat   = flag.String("beat", "4/4", "")
		preset = flag.String("preset", "", "")
		run    = flag.String("run", "", "")
	)
	flag.Parse()
	rand.Seed(time.Now().UnixNano())

	timeSig, err := parseTimeSignature(*beat)
	if err != nil {
		log.Fatal(err)
	}

	var commands []string
	if *run != "" {
		f, err := os.Open(*run)
		if err != nil {
			log.Fatal(err)
		}
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line != "" {
				commands = append(commands, line)
			}
		}
		if err := scanner.Err(); err != nil {
			log.Fatal(err)
		}
		f.Close()
	}

	engine := audio.New(audio.Config{})
	sequencer := audio.NewSequencer(audio.NewProps(), engine, engine.SampleRate())
	engine.AddTicker(sequencer)

	if err := sequencer.Set("bpm", *bpm); err != nil {
		log.Fatal(err)
	}

	if err := engine.Initialize(); err != nil {
		log.Fatal(err)
	}
	defer engine.Dispose()

	env := &env{
		engine:    engine,
		sequencer: sequencer,
		timeSig:   timeSig,
		devices: map[string]audio.Device{
			"kit": engine,
			"seq": sequencer,
		},
	}

	if *preset != "" {
		if err := audio.LoadPreset(*preset, sequencer); err != nil {
			log.Fatal(err)
		}
		sequencer.Start()
	}

	for _, line := range commands {
		if err := env.eval(line); err != nil {
			log.Fatal(err)
		}
	}

	if err := repl(env); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
