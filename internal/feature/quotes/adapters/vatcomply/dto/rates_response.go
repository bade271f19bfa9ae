package dto

// RatesResponse はVatComply /rates エンドポイントのレスポンスDTOです。
type RatesResponse struct {
	Date  string             `json:"date"`  // 為替レートの公表日
	Base  string             `json:"base"`  // 基準通貨
	Rates map[string]float64 `json:"rates"` // 通貨コードごとのレート
}
