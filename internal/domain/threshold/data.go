package threshold

import "github.com/budget-planner/backend/internal/domain/valueobject"

// Annual income boundaries per jurisdiction, in the local currency's major
// unit. Sources are periodically refreshed household income statistics;
// values are validated at load time.

// globalDefault applies when neither the country nor the subregion is known.
var globalDefault = valueobject.NewThresholdSet(12000, 30000, 60000, 120000)

// countryThresholds holds country-level defaults keyed by ISO 3166-1 alpha-2.
var countryThresholds = map[string]valueobject.ThresholdSet{
	"US": valueobject.NewThresholdSet(36000, 57600, 96000, 192000),
	"CA": valueobject.NewThresholdSet(34000, 54000, 90000, 175000),
	"GB": valueobject.NewThresholdSet(25000, 40000, 65000, 125000),
	"DE": valueobject.NewThresholdSet(26000, 42000, 68000, 130000),
	"FR": valueobject.NewThresholdSet(24000, 39000, 63000, 120000),
	"AU": valueobject.NewThresholdSet(45000, 70000, 110000, 200000),
	"JP": valueobject.NewThresholdSet(3000000, 4800000, 8000000, 15000000),
	"BR": valueobject.NewThresholdSet(24000, 42000, 84000, 180000),
	"MX": valueobject.NewThresholdSet(96000, 168000, 300000, 600000),
	"IN": valueobject.NewThresholdSet(300000, 600000, 1200000, 3000000),
}

// subregionThresholds holds subregion overrides for countries where the
// cost-of-living spread is wide enough to reclassify the same income.
var subregionThresholds = map[jurisdictionKey]valueobject.ThresholdSet{
	// United States, selected states.
	{country: "US", subregion: "CA"}: valueobject.NewThresholdSet(44935, 71896, 119826, 239652),
	{country: "US", subregion: "NY"}: valueobject.NewThresholdSet(43500, 69600, 116000, 232000),
	{country: "US", subregion: "WA"}: valueobject.NewThresholdSet(42600, 68160, 113600, 227200),
	{country: "US", subregion: "MA"}: valueobject.NewThresholdSet(45600, 72960, 121600, 243200),
	{country: "US", subregion: "TX"}: valueobject.NewThresholdSet(37200, 59520, 99200, 198400),
	{country: "US", subregion: "FL"}: valueobject.NewThresholdSet(36600, 58560, 97600, 195200),
	{country: "US", subregion: "MS"}: valueobject.NewThresholdSet(36000, 57600, 86400, 153000),
	{country: "US", subregion: "AL"}: valueobject.NewThresholdSet(33600, 53760, 89600, 179200),
	{country: "US", subregion: "WV"}: valueobject.NewThresholdSet(32400, 51840, 86400, 172800),
	{country: "US", subregion: "CO"}: valueobject.NewThresholdSet(41400, 66240, 110400, 220800),

	// Canada, selected provinces.
	{country: "CA", subregion: "ON"}: valueobject.NewThresholdSet(36000, 57600, 96000, 186000),
	{country: "CA", subregion: "BC"}: valueobject.NewThresholdSet(37200, 59520, 99200, 192000),
	{country: "CA", subregion: "QC"}: valueobject.NewThresholdSet(32400, 51840, 86400, 168000),

	// Germany, selected states.
	{country: "DE", subregion: "BY"}: valueobject.NewThresholdSet(28000, 45000, 73000, 140000),
	{country: "DE", subregion: "BE"}: valueobject.NewThresholdSet(26500, 43000, 70000, 134000),
}
