package main

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Doc1   string `arg:"" name:"doc1" optional:"" default:"pages/house-cleaning-lake-mary-fl.html" help:"First HTML page"`
	Doc2   string `arg:"" name:"doc2" optional:"" default:"pages/house-cleaning-longwood-fl.html" help:"Second HTML page"`
	Label1 string `name:"label1" default:"Lake Mary" help:"Label for the first page"`
	Label2 string `name:"label2" default:"Longwood" help:"Label for the second page"`
	Color  string `enum:"auto,always,never" default:"auto" help:"Highlight output (auto, always, never)"`
	Debug  bool   `help:"Log loading and matching details to stderr"`
}
