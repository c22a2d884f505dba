package restapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercentileTableHandlerListsAllMonths(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/percentile-table.json?key=TEST")

	require.Equal(t, http.StatusOK, resp.StatusCode)

	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok)
	list, ok := data["list"].([]interface{})
	require.True(t, ok)
	require.Len(t, list, 9)

	first := list[0].(map[string]interface{})
	assert.Equal(t, float64(1), first["month"])
	assert.Equal(t, 243.87, first["p50"])

	third := list[2].(map[string]interface{})
	assert.Equal(t, 11202.374, third["p10"])
	assert.Equal(t, 13689.055, third["p25"])
	assert.Equal(t, 18393.82, third["p50"])
	assert.Equal(t, 21512.3275, third["p75"])
	assert.Equal(t, 24093.88, third["p90"])
	// Month plus five bands
	assert.Len(t, third, 6)

	refs := data["references"].(map[string]interface{})
	assert.Len(t, refs["riskCategories"], 4)
	assert.False(t, data["limitExceeded"].(bool))
}

func TestPercentileRowHandler(t *testing.T) {
	api := createTestApiWithRateLimit(t, 100)

	t.Run("returns the row", func(t *testing.T) {
		resp, model := serveApiAndRetrieveEndpoint(t, api, "/api/percentile-table/9.json?key=TEST")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		entry := entryFromResponse(t, model)
		assert.Equal(t, float64(9), entry["month"])
		assert.Equal(t, 48425.45, entry["p90"])
	})

	t.Run("without extension", func(t *testing.T) {
		resp, _ := serveApiAndRetrieveEndpoint(t, api, "/api/percentile-table/4?key=TEST")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("unknown month", func(t *testing.T) {
		resp, model := serveApiAndRetrieveEndpoint(t, api, "/api/percentile-table/12.json?key=TEST")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "month not found", model.Text)
	})

	t.Run("non numeric month", func(t *testing.T) {
		resp, _ := serveApiAndRetrieveBody(t, api, "/api/percentile-table/june.json?key=TEST")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestRiskCategoriesHandler(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/risk-categories.json?key=TEST")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	list := model.Data.(map[string]interface{})["list"].([]interface{})
	require.Len(t, list, 4)

	names := make([]string, 0, len(list))
	for _, item := range list {
		names = append(names, item.(map[string]interface{})["name"].(string))
	}
	assert.Equal(t, []string{"Critical", "High Risk", "Watch", "On Track"}, names)

	onTrack := list[3].(map[string]interface{})
	assert.Equal(t, []interface{}{"p75", "p90"}, onTrack["percentiles"])
	assert.Equal(t, "green", onTrack["color"])
}

func TestCurrentTimeHandler(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/current-time.json?key=TEST")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data := model.Data.(map[string]interface{})
	entry := data["entry"].(map[string]interface{})
	assert.NotEmpty(t, entry["readableTime"])
	assert.InDelta(t, float64(model.CurrentTime), entry["time"], 5000)
}
