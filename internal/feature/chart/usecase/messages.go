package usecase

// User-facing texts (pt-BR).
const (
	MsgSelectDates     = "Por favor, selecione as datas de início e fim."
	MsgNoData          = "Nenhum dado de cotação disponível para o período selecionado."
	MsgUnknownAPIError = "Erro desconhecido na API."
	// MsgLoadFailedPrefix is followed by the failure reason.
	MsgLoadFailedPrefix = "Erro ao carregar cotações: "

	ChartTitle      = "Cotação Dólar (USD) vs. BRL, EUR, JPY"
	ChartSubtitle   = "Fonte: Vatcomply.com"
	ChartXAxisTitle = "Data"
	ChartYAxisTitle = "Valor da Cotação (USD como base)"
	EmptyChartTitle = "Nenhum dado para exibir"

	tooltipDecimals    = 4
	tooltipPointFormat = `<span style="color:{series.color}">{series.name}</span>: <b>{point.y:.4f}</b><br/>`
)
