package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/rondolang/rondo"
	"github.com/rondolang/rondo/compiler"
	"github.com/rondolang/rondo/player"
	"github.com/rondolang/rondo/version"
)

func main() {
	schedule := flag.Bool("s", false, "Do not play; print the compiled schedule to standard output instead.")
	play := flag.Bool("p", false, "Play the input pieces (default behaviour when no other output is defined).")
	listPorts := flag.Bool("l", false, "List the MIDI output ports and exit.")
	port := flag.Int("port", 0, "Index of the MIDI output port to play on.")
	capacity := flag.Int("channels", compiler.DefaultChannelCapacity, "Channel capacity of the playback device.")
	versionFlag := flag.Bool("v", false, "Print version.")
	help := flag.Bool("h", false, "Show help.")
	flag.Usage = printUsage
	flag.Parse()
	if *versionFlag {
		fmt.Println(version.VersionOrHash)
		os.Exit(0)
	}
	if *listPorts {
		names, err := player.OutPorts()
		if err != nil {
			fmt.Fprintf(os.Stderr, "could not list MIDI outputs: %v\n", err)
			os.Exit(1)
		}
		for i, name := range names {
			fmt.Printf("%v: %v\n", i, name)
		}
		os.Exit(0)
	}
	if flag.NArg() == 0 || *help {
		flag.Usage()
		os.Exit(0)
	}
	if !*schedule {
		*play = true // if the user asks for nothing else, just play the piece
	}
	var p *player.Player
	if *play {
		var err error
		p, err = player.New(*port)
		if err != nil {
			fmt.Fprintf(os.Stderr, "could not open MIDI output: %v\n", err)
			os.Exit(1)
		}
	}
	process := func(filename string) error {
		inputBytes, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("could not read file %v: %v", filename, err)
		}
		var piece rondo.Piece
		if err := yaml.Unmarshal(inputBytes, &piece); err != nil {
			return fmt.Errorf("the piece could not be parsed as .yml: %v", err)
		}
		music, err := piece.Music()
		if err != nil {
			return fmt.Errorf("could not assemble the piece: %v", err)
		}
		seq, err := compiler.Compile(music, compiler.Config{
			TicksPerBeat:    piece.TicksPerBeat,
			BeatsPerMinute:  piece.BPM,
			ChannelCapacity: *capacity,
		})
		if err != nil {
			return fmt.Errorf("could not compile the piece: %v", err)
		}
		if *schedule {
			listing, err := seq.Listing()
			if err != nil {
				return fmt.Errorf("could not render the schedule: %v", err)
			}
			fmt.Print(listing)
		}
		if *play {
			if err := p.Play(context.Background(), seq); err != nil {
				return fmt.Errorf("playing failed: %v", err)
			}
		}
		return nil
	}
	retval := 0
	for _, param := range flag.Args() {
		if info, err := os.Stat(param); err == nil && info.IsDir() {
			files, err := filepath.Glob(filepath.Join(param, "*.yml"))
			if err != nil {
				fmt.Fprintf(os.Stderr, "could not glob the path %v for yml files: %v\n", param, err)
				retval = 1
				continue
			}
			for _, file := range files {
				if err := process(file); err != nil {
					fmt.Fprintf(os.Stderr, "could not process file %v: %v\n", file, err)
					retval = 1
				}
			}
		} else {
			if err := process(param); err != nil {
				fmt.Fprintf(os.Stderr, "could not process file %v: %v\n", param, err)
				retval = 1
			}
		}
	}
	if p != nil {
		p.Close()
	}
	os.Exit(retval)
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Rondo command line utility for playing .yml piece files.\nUsage: %s [flags] [path ...]\n", os.Args[0])
	flag.PrintDefaults()
}
