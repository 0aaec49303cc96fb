package models

// ChildAge is one child in a search, identified only by age.
type ChildAge struct {
	Age int `json:"age"`
}

// SearchParams is a validated date/occupancy combination. Dates are
// calendar dates in YYYY-MM-DD form; Children preserves the order the
// ages were entered in.
type SearchParams struct {
	FromDate string     `json:"fromDate"`
	ToDate   string     `json:"toDate"`
	Adults   int        `json:"adults"`
	Children []ChildAge `json:"children"`
}
