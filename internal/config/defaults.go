package config

const (
	defaultDatasetPath      = "imdb_top_1000.csv"
	defaultRecommendLimit   = 5
	defaultSimilarLimit     = 10
	defaultMinRatingFloor   = 7.6
	defaultMinRatingCeiling = 9.3
	defaultLogLevel         = "info"
	defaultLogFormat        = "console"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Dataset: Dataset{
			Path: defaultDatasetPath,
		},
		Recommend: Recommend{
			Limit:            defaultRecommendLimit,
			SimilarLimit:     defaultSimilarLimit,
			MinRatingFloor:   defaultMinRatingFloor,
			MinRatingCeiling: defaultMinRatingCeiling,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
