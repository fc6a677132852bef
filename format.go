package selfcore

import "strconv"

// formatInt and formatFloat back _NumToString (spec 4.4). strconv is
// the standard numeric formatter throughout the retrieval pack itself
// (it appears, unreplaced, even in the examples that otherwise lean on
// third-party libraries); there is no ecosystem numeric-formatting
// library to reach for here instead.
func formatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
