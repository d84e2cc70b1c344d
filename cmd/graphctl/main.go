// Command graphctl inspects and manipulates wsgraph Snapshot files on
// disk: creating a fresh graph, dumping one as Graphviz dot, and
// diffing two snapshots into the Update list that would rebase one onto
// the other.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/arlojs/wsgraph/snapshot"
)

var version = "dev"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "graphctl: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		usage()
		return errors.New("missing subcommand")
	}

	logger := setupLogger()

	switch args[0] {
	case "new":
		return runNew(args[1:])
	case "dump":
		return runDump(args[1:])
	case "detect":
		return runDetect(args[1:], logger)
	case "version":
		fmt.Printf("graphctl %s\n", version)
		return nil
	case "-h", "--help", "help":
		usage()
		return nil
	default:
		usage()
		return fmt.Errorf("unknown subcommand %q", args[0])
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: graphctl <new|dump|detect> [options]\n\n")
	fmt.Fprintf(os.Stderr, "  new -out <file>              create an empty graph with a fresh root\n")
	fmt.Fprintf(os.Stderr, "  dump -in <file>               print a snapshot as Graphviz dot\n")
	fmt.Fprintf(os.Stderr, "  detect -base <file> -updated <file>   print the rebase updates from base to updated\n")
}

func runNew(args []string) error {
	fs := flag.NewFlagSet("graphctl new", flag.ContinueOnError)
	out := fs.String("out", "", "output snapshot file path (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *out == "" {
		return errors.New("-out is required")
	}

	g, err := snapshot.NewWithRoot()
	if err != nil {
		return fmt.Errorf("create graph: %w", err)
	}
	if err := g.RehashAll(); err != nil {
		return fmt.Errorf("rehash: %w", err)
	}
	return writeSnapshot(*out, g)
}

func runDump(args []string) error {
	fs := flag.NewFlagSet("graphctl dump", flag.ContinueOnError)
	in := fs.String("in", "", "input snapshot file path (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return errors.New("-in is required")
	}

	g, err := readSnapshot(*in)
	if err != nil {
		return err
	}
	fmt.Print(g.Dump())
	return nil
}

func runDetect(args []string, logger *slog.Logger) error {
	fs := flag.NewFlagSet("graphctl detect", flag.ContinueOnError)
	basePath := fs.String("base", "", "base snapshot file path (required)")
	updatedPath := fs.String("updated", "", "updated snapshot file path (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *basePath == "" || *updatedPath == "" {
		return errors.New("-base and -updated are required")
	}

	base, err := readSnapshot(*basePath)
	if err != nil {
		return fmt.Errorf("read base: %w", err)
	}
	updated, err := readSnapshot(*updatedPath)
	if err != nil {
		return fmt.Errorf("read updated: %w", err)
	}

	updates, err := base.DetectUpdates(context.Background(), updated)
	if err != nil {
		return fmt.Errorf("detect updates: %w", err)
	}
	logger.Debug("detected updates", slog.Int("count", len(updates)))

	for _, u := range updates {
		switch u.Kind {
		case snapshot.UpdateNewNode, snapshot.UpdateReplaceNode:
			fmt.Printf("%s %s\n", u.Kind, u.NodeID)
		case snapshot.UpdateNewEdge, snapshot.UpdateRemoveEdge:
			fmt.Printf("%s %s -> %s (%s)\n", u.Kind, u.Source, u.Target, u.EdgeKind.Discriminant)
		}
	}
	return nil
}

func readSnapshot(path string) (*snapshot.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var snap snapshot.Snapshot
	if err := json.NewDecoder(f).Decode(&snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return snapshot.FromSnapshot(snap)
}

func writeSnapshot(path string, g *snapshot.Graph) error {
	snap, err := g.ToSnapshot()
	if err != nil {
		return fmt.Errorf("serialize: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(snap)
}

func setupLogger() *slog.Logger {
	handler := slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug})
	if os.Getenv("GRAPHCTL_DEBUG") != "" {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug, AddSource: true})
	}
	return slog.New(handler)
}
