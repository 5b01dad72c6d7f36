// Package diagram models a static architecture picture as clusters, nodes
// and edges, and converts it to Graphviz DOT.
//
// # Overview
//
// A [Diagram] is a write-once rendering directive: it is built from a
// definition, validated, turned into DOT with [Diagram.ToDOT], handed to the
// rendering backend and discarded. There is no identity beyond the node IDs
// that let edges refer to previously declared nodes.
//
//	d := &diagram.Diagram{
//	    Name:      "tiny",
//	    Title:     "Tiny",
//	    Filename:  "tiny",
//	    Format:    "png",
//	    Direction: diagram.TopToBottom,
//	    Nodes: []diagram.Node{
//	        {ID: "lb", Category: "aws.network.ELB", Label: "ALB"},
//	        {ID: "app", Category: "aws.compute.EC2", Label: "App"},
//	    },
//	    Edges: []diagram.Edge{{From: "lb", To: "app", Label: "HTTP:8080"}},
//	}
//	if err := d.Validate(); err != nil {
//	    return err
//	}
//	dot := d.ToDOT(diagram.Options{})
//
// # Categories
//
// Each node carries a category such as "aws.compute.EC2" that selects its
// icon style from the built-in catalog (see [LookupCategory]). Unknown
// categories fail validation, which guards definitions against icon typos.
//
// # Clusters
//
// Clusters nest to any depth. Unless a cluster sets its own bgcolor, it gets
// a background color chosen by nesting depth.
package diagram
