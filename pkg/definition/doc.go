// Package definition loads diagram definitions: declarative TOML tables of
// clusters, nodes, edges, style attributes and the summary banner.
//
// # Built-in Diagrams
//
// Three definitions are embedded in the binary:
//
//   - architecture: full AWS architecture with the CI/CD overlay (English, TB)
//   - cicd-pipeline: the nine-step deployment flow (Korean, LR)
//   - clean-architecture: infrastructure only (Korean, TB)
//
// Load one with [Builtin] or all of them with [Builtins].
//
// # File Format
//
//	name      = "tiny"
//	title     = "Tiny"
//	filename  = "tiny"        # output base name, required
//	format    = "png"         # defaults to png
//	direction = "LR"          # TB (default), LR, BT, RL
//
//	[graph_attr]
//	splines = "ortho"
//
//	[[clusters]]
//	label = "VPC"
//	[clusters.graph_attr]
//	bgcolor = "#E3F2FD"
//
//	[[clusters.nodes]]
//	id       = "app"
//	category = "aws.compute.EC2"
//	label    = "App Server\n10.0.3.118"
//
//	[[nodes]]
//	id       = "users"
//	category = "aws.compute.EC2"
//	label    = "Users"
//
//	[[edges]]
//	from  = "users"
//	to    = "app"
//	label = "HTTPS"
//	color = "red"
//	style = "bold"
//
//	[banner]
//	headline       = "Diagram generated"
//	output_caption = "Output file:"
//	items          = ["- one app server"]
//
// Every loaded definition is validated before it is returned.
package definition
