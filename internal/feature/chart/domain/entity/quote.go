package entity

// Currencies are the quoted currency codes, in the order their series are drawn.
var Currencies = []string{"BRL", "EUR", "JPY"}

// Series is one named line of the chart. A nil entry marks an absent point.
type Series struct {
	Name string
	Data []*float64
}

// FetchResult is the raw answer of the quote backend: status code and undecoded body.
type FetchResult struct {
	StatusCode int
	Body       []byte
}
