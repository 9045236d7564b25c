package config

// DumpFlags carries the dump-specific flag surface: element/depth caps,
// display mode, and tag filtering. Kept separate from GlobalConfig, which
// only covers logging/output concerns that would apply even if this tool
// grew a second operation.
type DumpFlags struct {
	Path     string `arg:"" type:"existingfile" help:"DICOM Part 10 file to dump"`
	Count    int    `name:"count" short:"n" default:"250" help:"Cap on the number of elements printed"`
	All      bool   `name:"all" help:"Remove the element cap (overrides -n)"`
	Depth    int    `name:"depth" short:"d" default:"5" help:"Maximum sequence recursion depth (1-100)"`
	Collapse bool   `name:"collapse" short:"c" help:"Collapse sequences instead of descending into them"`
	Full     bool   `name:"full" short:"v" help:"Disable value truncation"`
	Filter   string `name:"filter" short:"f" help:"Restrict output to a ;/,-separated list of (gggg,eeee) tags, max 100"`
}
