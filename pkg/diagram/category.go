package diagram

import (
	"maps"
	"slices"
	"strings"
)

// Category describes how nodes of one kind are drawn.
type Category struct {
	ID        string // "provider.service.Name"
	Shape     string // Graphviz node shape
	FillColor string
	FontColor string
}

// Provider returns the first segment of the category ID, e.g. "aws".
func (c Category) Provider() string {
	p, _, _ := strings.Cut(c.ID, ".")
	return p
}

// Name returns the last segment of the category ID, e.g. "EC2".
func (c Category) Name() string {
	return c.ID[strings.LastIndex(c.ID, ".")+1:]
}

// AWS architecture icon palette, grouped by service family.
const (
	colorCompute    = "#ED7100"
	colorNetwork    = "#8C4FFF"
	colorDatabase   = "#C925D1"
	colorSecurity   = "#DD344C"
	colorStorage    = "#7AA116"
	colorDevTools   = "#3B48CC"
	colorManagement = "#E7157B"
	colorGitHub     = "#24292E"
	colorJava       = "#5382A1"
)

var categories = map[string]Category{}

func register(id, shape, fill string) {
	categories[id] = Category{ID: id, Shape: shape, FillColor: fill, FontColor: "white"}
}

func init() {
	register("aws.compute.EC2", "box3d", colorCompute)
	register("aws.compute.ECR", "folder", colorCompute)
	register("aws.compute.ECS", "component", colorCompute)

	register("aws.network.ELB", "box", colorNetwork)
	register("aws.network.VPC", "box", colorNetwork)
	register("aws.network.InternetGateway", "house", colorNetwork)
	register("aws.network.NATGateway", "invhouse", colorNetwork)
	register("aws.network.RouteTable", "tab", colorNetwork)

	register("aws.database.RDS", "cylinder", colorDatabase)
	register("aws.security.SecretsManager", "note", colorSecurity)
	register("aws.storage.S3", "folder", colorStorage)
	register("aws.devtools.Codedeploy", "component", colorDevTools)

	register("aws.management.SystemsManager", "note", colorManagement)
	register("aws.management.Cloudwatch", "tab", colorManagement)

	register("onprem.vcs.Github", "box", colorGitHub)
	register("onprem.ci.GithubActions", "box", colorGitHub)

	register("programming.language.Java", "box", colorJava)
}

// LookupCategory returns the category registered under id.
func LookupCategory(id string) (Category, bool) {
	c, ok := categories[id]
	return c, ok
}

// Categories returns every registered category sorted by ID.
func Categories() []Category {
	out := make([]Category, 0, len(categories))
	for _, id := range slices.Sorted(maps.Keys(categories)) {
		out = append(out, categories[id])
	}
	return out
}
