package usecase

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cotacao_moedas/internal/feature/chart/domain/entity"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		status      int
		body        string
		wantKind    entity.OutcomeKind
		wantMessage string
	}{
		{
			name:        "error field is surfaced",
			status:      http.StatusBadRequest,
			body:        `{"error": "Formato de data inválido. Use YYYY-MM-DD."}`,
			wantKind:    entity.OutcomeFailed,
			wantMessage: MsgLoadFailedPrefix + "Formato de data inválido. Use YYYY-MM-DD.",
		},
		{
			name:        "missing error field falls back to generic text",
			status:      http.StatusInternalServerError,
			body:        `{}`,
			wantKind:    entity.OutcomeFailed,
			wantMessage: MsgLoadFailedPrefix + MsgUnknownAPIError,
		},
		{
			name:     "undecodable error body fails",
			status:   http.StatusBadGateway,
			body:     `<html>bad gateway</html>`,
			wantKind: entity.OutcomeFailed,
		},
		{
			name:     "undecodable success body fails",
			status:   http.StatusOK,
			body:     `{"dates": [`,
			wantKind: entity.OutcomeFailed,
		},
		{
			name:        "message wins over dates",
			status:      http.StatusOK,
			body:        `{"dates": ["2024-01-02"], "BRL": [5], "message": "aviso"}`,
			wantKind:    entity.OutcomeNoData,
			wantMessage: "aviso",
		},
		{
			name:        "empty message is ignored",
			status:      http.StatusOK,
			body:        `{"dates": [], "message": ""}`,
			wantKind:    entity.OutcomeNoData,
			wantMessage: MsgNoData,
		},
		{
			name:     "any 2xx is a success",
			status:   http.StatusNonAuthoritativeInfo,
			body:     `{"dates": ["2024-01-02"], "BRL": [5], "EUR": [1], "JPY": [150]}`,
			wantKind: entity.OutcomePopulated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out := Classify(tt.status, []byte(tt.body))
			assert.Equal(t, tt.wantKind, out.Kind)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, out.Message)
			}
			if tt.wantKind == entity.OutcomeFailed {
				assert.Error(t, out.Err)
				assert.Contains(t, out.Message, MsgLoadFailedPrefix)
			}
		})
	}
}

func TestClassify_AlignsSeriesToDates(t *testing.T) {
	t.Parallel()

	body := `{"dates": ["2024-01-02", "2024-01-03"], "BRL": [5.0, 5.1, 9.9], "EUR": [1.1]}`
	out := Classify(http.StatusOK, []byte(body))

	require.Equal(t, entity.OutcomePopulated, out.Kind)
	require.Len(t, out.Series, 3)
	for _, s := range out.Series {
		assert.Len(t, s.Data, 2, s.Name)
	}
	assert.InDelta(t, 5.1, *out.Series[0].Data[1], 1e-9)
	assert.Nil(t, out.Series[1].Data[1])
	assert.Nil(t, out.Series[2].Data[0], "missing currency has only absent points")
}
