package cli

const (
	FlagHome    = "home"
	FlagFormat  = "format"
	FlagLenient = "lenient"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)
