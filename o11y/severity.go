package o11y

const (
	SeverityLowest  string = "lowest"  // No threat to the build or the page - the caller can fix this themselves and continue
	SeverityLow     string = "low"     // No threat to the build or the page - the caller can fix this themselves but will need to rerun
	SeverityMedium  string = "medium"  // Part of a page may render wrongly - the data or configuration feeding it needs fixing
	SeverityHigh    string = "high"    // The build or the page cannot be produced - something outside the caller's control needs fixing
	SeverityHighest string = "highest" // Nothing can be produced and other builds sharing the configuration are affected too
)
