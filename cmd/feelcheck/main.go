// Command feelcheck replays scripted input against the real controller and
// physics and reports scenarios whose expectations fail.
package main

import (
	"flag"
	"log"
	"os"
	"strings"
)

func main() {
	dir := flag.String("dir", "", "directory of .toml scenarios (default: built-in set)")
	filter := flag.String("run", "", "only run scenarios whose name contains this")
	verbose := flag.Bool("v", false, "log controller transitions and restarts")
	flag.Parse()

	scenarios, err := LoadScenarios(*dir)
	if err != nil {
		log.Fatal(err)
	}

	failed := 0
	for _, sc := range scenarios {
		if *filter != "" && !strings.Contains(sc.Name, *filter) {
			continue
		}
		res, err := Run(sc, *verbose)
		if err != nil {
			log.Printf("ERROR %s: %v", sc.Name, err)
			failed++
			continue
		}
		if res.Passed() {
			log.Printf("ok    %s (%d frames, %d restarts)", res.Scenario, res.Frames, res.Restarts)
			continue
		}
		failed++
		log.Printf("FAIL  %s", res.Scenario)
		for _, f := range res.Failures {
			log.Printf("      %s", f)
		}
	}

	if failed > 0 {
		os.Exit(1)
	}
}
