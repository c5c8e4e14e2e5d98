// Debug tool that prints the saved drafts and their undo/redo timelines.
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/drafts/internal/config"
	"github.com/llehouerou/drafts/internal/state"
	"github.com/llehouerou/drafts/internal/ui/render"
)

func main() {
	dbPath := flag.String("db", "", "database path (default: from config, then XDG data dir)")
	messages := flag.Int("messages", 0, "also print the last N sent messages per channel")
	flag.Parse()

	path := *dbPath
	if path == "" {
		cfg, err := config.Load()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		path = cfg.DatabasePath
	}

	mgr, err := state.Open(path)
	if err != nil {
		log.Fatalf("Failed to open state: %v", err)
	}
	defer mgr.Close()

	drafts, err := mgr.ListDrafts()
	if err != nil {
		log.Printf("Failed to list drafts: %v", err)
		return
	}
	if len(drafts) == 0 {
		fmt.Println("No saved drafts.")
	}

	now := time.Now()
	for _, d := range drafts {
		fmt.Printf("#%s  edited %s  caret %d\n", d.Channel, humanize.RelTime(d.UpdatedAt, now, "ago", "from now"), d.Caret)
		fmt.Printf("  text: %q\n", d.Message)
		if d.History == nil {
			fmt.Println("  no edit history")
		} else {
			fmt.Printf("  history: %d entries, cooldown counter %d\n", len(d.History.Stack), d.History.CurrentCooldownNumber)
			for i, e := range d.History.Stack {
				marker := " "
				if i == d.History.CurrentNumber {
					marker = ">"
				}
				fmt.Printf("   %s %3d  %q (caret %d)\n", marker, i, render.Truncate(render.OneLine(e.Message), 60), e.CaretPosition)
			}
		}

		if *messages > 0 {
			msgs, err := mgr.ListMessages(d.Channel, *messages)
			if err != nil {
				log.Printf("Failed to list messages of %s: %v", d.Channel, err)
				continue
			}
			for _, msg := range msgs {
				fmt.Printf("  %s  %s\n", msg.SentAt.Format(time.DateTime), strings.ReplaceAll(msg.Body, "\n", "\n    "))
			}
		}
		fmt.Println()
	}
}
