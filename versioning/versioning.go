package versioning

// set at build time via -ldflags
var (
	Commit    string
	Branch    string
	BuildTime string
)
