package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cotacao_moedas/internal/feature/chart/adapters/render"
	"cotacao_moedas/internal/feature/chart/domain/entity"
	"cotacao_moedas/internal/feature/chart/transport/handler"
	"cotacao_moedas/internal/feature/chart/transport/http/dto"
	"cotacao_moedas/internal/feature/chart/usecase"
)

type memStore struct {
	mu   sync.Mutex
	data map[string]string
}

func (m *memStore) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return "", usecase.ErrPreferenceNotFound
	}
	return v, nil
}

func (m *memStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

type stubClient struct {
	status int
	body   string
	calls  []entity.DateRange
}

func (s *stubClient) FetchQuotes(_ context.Context, start, end string) (*entity.FetchResult, error) {
	s.calls = append(s.calls, entity.DateRange{StartDate: start, EndDate: end})
	return &entity.FetchResult{StatusCode: s.status, Body: []byte(s.body)}, nil
}

type fixture struct {
	router *gin.Engine
	store  *memStore
	client *stubClient
}

func newFixture(t *testing.T, status int, body string) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := &memStore{data: map[string]string{}}
	client := &stubClient{status: status, body: body}
	state := usecase.NewAppState()
	container := render.NewContainer()
	sink := render.NewSink(container, render.Config{Format: render.FormatSVG})
	theme := usecase.NewThemeManager(store, sink, state)
	ctrl := usecase.NewQuoteChartController(client, sink, theme, state)
	h := handler.NewDashboardHandler(ctrl, theme, state, container)

	r := gin.New()
	r.SetHTMLTemplate(handler.Template())
	r.GET("/", h.Page)
	r.POST("/fetch", h.Fetch)
	r.POST("/theme", h.Theme)
	r.GET("/chart", h.Chart)
	r.GET("/api/state", h.State)
	return &fixture{router: r, store: store, client: client}
}

func (f *fixture) do(method, path string, form url.Values) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func (f *fixture) snapshot(t *testing.T) dto.StateResponse {
	t.Helper()
	w := f.do(http.MethodGet, "/api/state", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var out dto.StateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

const okBody = `{"dates":["2024-01-08","2024-01-09"],"BRL":[4.9,4.95],"EUR":[0.91,null],"JPY":[144.1,145.2]}`

func TestDashboardHandler_ChartBeforeFetch(t *testing.T) {
	f := newFixture(t, http.StatusOK, okBody)

	w := f.do(http.MethodGet, "/chart", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = f.do(http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "<img")
}

func TestDashboardHandler_FetchPopulated(t *testing.T) {
	f := newFixture(t, http.StatusOK, okBody)

	w := f.do(http.MethodPost, "/fetch", url.Values{"start_date": {"2024-01-08"}, "end_date": {"2024-01-09"}})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	require.Len(t, f.client.calls, 1)

	st := f.snapshot(t)
	assert.Equal(t, "2024-01-08", st.StartDate)
	assert.Empty(t, st.Status)
	require.NotNil(t, st.Chart)
	assert.Equal(t, usecase.ChartTitle, st.Chart.Title)
	assert.Equal(t, []string{"2024-01-08", "2024-01-09"}, st.Chart.Categories)
	require.Len(t, st.Chart.Series, 3)
	assert.Nil(t, st.Chart.Series[1].Data[1])

	w = f.do(http.MethodGet, "/chart", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/svg+xml", w.Header().Get("Content-Type"))
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))

	page := f.do(http.MethodGet, "/", nil).Body.String()
	assert.Contains(t, page, `<img src="/chart?v=`)
	assert.Contains(t, page, "<td>4.9500</td>")
	assert.Contains(t, page, "<td>-</td>")
}

func TestDashboardHandler_FetchSingleDay(t *testing.T) {
	f := newFixture(t, http.StatusOK, `{"dates":["2024-01-02"],"BRL":[4.9],"EUR":[0.91],"JPY":[141.2]}`)

	f.do(http.MethodPost, "/fetch", url.Values{"start_date": {"2024-01-02"}, "end_date": {"2024-01-02"}})

	st := f.snapshot(t)
	assert.Empty(t, st.Status)
	require.NotNil(t, st.Chart)
	assert.Equal(t, usecase.ChartTitle, st.Chart.Title)
	assert.Equal(t, []string{"2024-01-02"}, st.Chart.Categories)

	w := f.do(http.MethodGet, "/chart", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "2024-01-02")
}

func TestDashboardHandler_FetchMissingDate(t *testing.T) {
	f := newFixture(t, http.StatusOK, okBody)

	f.do(http.MethodPost, "/fetch", url.Values{"start_date": {"2024-01-08"}})
	assert.Empty(t, f.client.calls)

	st := f.snapshot(t)
	assert.Equal(t, usecase.MsgSelectDates, st.Status)
	assert.Nil(t, st.Chart)
}

func TestDashboardHandler_FetchBackendError(t *testing.T) {
	f := newFixture(t, http.StatusServiceUnavailable, `{"error":"serviço indisponível"}`)

	f.do(http.MethodPost, "/fetch", url.Values{"start_date": {"2024-01-08"}, "end_date": {"2024-01-09"}})

	st := f.snapshot(t)
	assert.Equal(t, "Erro ao carregar cotações: serviço indisponível", st.Status)
	require.NotNil(t, st.Chart)
	assert.Equal(t, usecase.EmptyChartTitle, st.Chart.Title)
	assert.Empty(t, st.Chart.Series)
	assert.Contains(t, f.do(http.MethodGet, "/", nil).Body.String(), "serviço indisponível")
}

func TestDashboardHandler_Theme(t *testing.T) {
	f := newFixture(t, http.StatusOK, okBody)

	tests := []struct {
		name  string
		form  url.Values
		want  bool
		saved string
	}{
		{name: "checked", form: url.Values{"dark_mode": {"true"}}, want: true, saved: "true"},
		{name: "browser default value", form: url.Values{"dark_mode": {"on"}}, want: true, saved: "true"},
		{name: "unchecked", form: url.Values{}, want: false, saved: "false"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := f.do(http.MethodPost, "/theme", tt.form)
			assert.Equal(t, http.StatusSeeOther, w.Code)
			assert.Equal(t, tt.want, f.snapshot(t).DarkMode)
			assert.Equal(t, tt.saved, f.store.data[entity.PreferenceKey])

			page := f.do(http.MethodGet, "/", nil).Body.String()
			if tt.want {
				assert.Contains(t, page, `class="dark-mode"`)
			} else {
				assert.NotContains(t, page, `class="dark-mode"`)
			}
		})
	}
}

func TestDashboardHandler_ThemeRedrawsChart(t *testing.T) {
	f := newFixture(t, http.StatusOK, okBody)
	f.do(http.MethodPost, "/fetch", url.Values{"start_date": {"2024-01-08"}, "end_date": {"2024-01-09"}})
	before := f.do(http.MethodGet, "/chart", nil).Header().Get("ETag")

	f.do(http.MethodPost, "/theme", url.Values{"dark_mode": {"true"}})
	after := f.do(http.MethodGet, "/chart", nil).Header().Get("ETag")

	assert.NotEqual(t, before, after)
}
