// Package main provides deckcheck, a command-line tool that decodes a
// shared deck code and reports whether it passes the deck builder rules.
// Useful for checking community deck codes without running the site.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/lightdarktcg/companion/internal/catalog"
	"github.com/lightdarktcg/companion/internal/deck"
)

var (
	catalogFile = flag.String("catalog", "catalog.json", "Catalog JSON path")
	curveOut    = flag.String("curve", "", "Write a cost curve chart HTML to this path")
	typesOut    = flag.String("types", "", "Write a type distribution chart HTML to this path")
)

func main() {
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: deckcheck [flags] <deck-code>")
		flag.PrintDefaults()
		os.Exit(2)
	}
	code := flag.Arg(0)

	cat, err := catalog.LoadFile(*catalogFile)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	d, unresolved, err := deck.Decode(code, cat)
	if err != nil {
		log.Fatalf("Failed to decode deck code: %v", err)
	}

	fmt.Printf("Deck: %d cards", d.Len())
	if unresolved > 0 {
		fmt.Printf(" (%d codes no longer in the catalog)", unresolved)
	}
	fmt.Println()
	fmt.Println()

	for i, card := range d.Cards() {
		fmt.Printf("%3d. [%s] %-30s CT %d  %s\n", i+1, card.Type, card.Name, card.CT, card.Code)
	}
	fmt.Println()

	// Replay the deck through the insertion rules. A code produced by the
	// builder passes; a hand-crafted one may not.
	replay := deck.New()
	valid := unresolved == 0
	for _, card := range d.Cards() {
		if err := replay.TryAdd(card); err != nil {
			fmt.Printf("RULE VIOLATION: %s: %v\n", card.Name, err)
			valid = false
		}
	}

	stats := deck.ComputeStats(d)
	printStats(stats)

	if !stats.IsSizeValid {
		fmt.Printf("SIZE: %d cards, submittable decks hold %d to %d\n", stats.Total, deck.MinSize, deck.MaxSize)
		valid = false
	}
	if !stats.HasHero {
		fmt.Println("NOTE: deck has no hero")
	}

	if err := writeCharts(stats); err != nil {
		log.Fatalf("Failed to write chart: %v", err)
	}

	fmt.Println()
	if valid {
		fmt.Println("Deck is valid.")
	} else {
		fmt.Println("Deck is NOT valid.")
		os.Exit(1)
	}
}

func printStats(stats deck.Stats) {
	fmt.Printf("Types: Hero %d, Combatant %d, Equipment %d, Effect %d\n",
		stats.CountsByType[catalog.TypeHero],
		stats.CountsByType[catalog.TypeCombatant],
		stats.CountsByType[catalog.TypeEquipment],
		stats.CountsByType[catalog.TypeEffect])

	cts := make([]int, 0, len(stats.CostDistribution))
	for ct := range stats.CostDistribution {
		cts = append(cts, ct)
	}
	sort.Ints(cts)

	fmt.Print("Curve:")
	for _, ct := range cts {
		fmt.Printf(" %d:%d", ct, stats.CostDistribution[ct])
	}
	fmt.Println()
}
