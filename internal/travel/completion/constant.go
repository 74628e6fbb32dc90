package completion

// Log prefixes
const (
	LogPrefixGenerate = "internal.travel.completion.Generate"
	LogPrefixExtract  = "internal.travel.completion.Extract"
	LogPrefixClassify = "internal.travel.completion.Classify"
)

// Sampling settings per call kind
const (
	GenerateTemperature = 0.7
	ExtractTemperature  = 0.2
	ClassifyTemperature = 0.1

	GenerateMaxTokens = 4096
	ExtractMaxTokens  = 4096
	ClassifyMaxTokens = 512
)
