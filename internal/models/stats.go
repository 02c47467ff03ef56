package models

import (
	"fjacquet/card-spend/internal/logging"
)

// LoadStats tracks what happened to the rows of the input file.
type LoadStats struct {
	Read    int // data rows read (header excluded)
	Kept    int // rows retained in the dataset
	Dropped int // rows discarded because a field was blank
}

// LogSummary logs a summary of the load
func (s LoadStats) LogSummary(logger logging.Logger, file string) {
	if logger == nil {
		return
	}

	logger.Info("Transaction log loaded",
		logging.Field{Key: logging.FieldFile, Value: file},
		logging.Field{Key: "rows_read", Value: s.Read},
		logging.Field{Key: "rows_kept", Value: s.Kept},
		logging.Field{Key: "rows_dropped", Value: s.Dropped},
		logging.Field{Key: "kept_rate", Value: s.KeptRate()},
	)
}

// KeptRate returns the share of rows retained, as a percentage
func (s LoadStats) KeptRate() float64 {
	if s.Read == 0 {
		return 0.0
	}
	return float64(s.Kept) / float64(s.Read) * 100.0
}
