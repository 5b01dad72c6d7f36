// Package pkg provides the libraries behind tptdiagram, the renderer for the
// TradingPT development-server architecture diagrams.
//
// # Overview
//
// A diagram is authored as a TOML definition (nodes, nested clusters, edges
// and a summary banner), turned into Graphviz DOT, laid out and exported as
// an image file. The three built-in diagrams ship embedded in the binary.
//
// # Architecture
//
// The data flow through tptdiagram:
//
//	TOML definition (embedded or --file)
//	         ↓
//	    [definition] package (decode + validate)
//	         ↓
//	    [diagram] package (model, category catalog, DOT emission)
//	         ↓
//	    [pipeline] package (artifact cache, write <filename>.<format>)
//	         ↓
//	    [render] package (Graphviz SVG, PNG/PDF via rsvg-convert)
//
// # Quick Start
//
//	d, _ := definition.Builtin("architecture")
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil)
//	res, err := runner.Execute(ctx, pipeline.Options{Diagram: d})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	d.WriteBanner(os.Stdout, res.Path)
//
// # Main Packages
//
// [definition] - TOML loader and the embedded built-in diagrams. [definition.Match]
// selects built-ins by glob or substring.
//
// [diagram] - The in-memory diagram: nodes, clusters, edges, banner, plus
// validation, statistics and deterministic DOT output. The category catalog maps
// identifiers such as "aws.network.NATGateway" to a Graphviz node style.
//
// [render] - Graphviz layout through go-graphviz, PNG and PDF via rsvg-convert.
//
// [pipeline] - DOT → cache → render → write, with observability hooks.
//
// [cache] - Content-addressed artifact cache: file, Redis and no-op backends.
//
// [observability] - Hook interfaces for render and cache events.
//
// [errors] - Structured errors with stable codes.
//
// # Testing
//
//	go test ./...           # All tests
//	go test -short ./...    # Skip rendering every built-in diagram
//	go test -run Example    # Examples only
package pkg
