package types

// Frequency is the calendar period granularity for periodic rebalancing.
type Frequency string

const (
	Daily   Frequency = "D"
	Weekly  Frequency = "W"
	Monthly Frequency = "M"
)

var ConvertFrequency = map[string]Frequency{
	"daily":   Daily,
	"weekly":  Weekly,
	"monthly": Monthly,
	"D":       Daily,
	"W":       Weekly,
	"M":       Monthly,
}
