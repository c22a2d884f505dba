package webui

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"fellowdash.org/internal/logging"
	"fellowdash.org/internal/percentile"
	"fellowdash.org/internal/utils"
)

const (
	dashboardTitle      = "Fellow Collection Dashboard"
	invalidMonthMessage = "Invalid month entered. Please enter a month between 1 and 9."
	invalidAmountText   = "Invalid collection amount entered. Please enter an amount of 0 or more."
)

type resultPanel struct {
	Month           int
	Amount          float64
	Percentile      string
	PercentileLabel string
	Category        string
	Badge           string
	Color           string
	Advisory        percentile.AdvisoryMessage
}

type dashboardPage struct {
	Title       string
	MonthInput  string
	AmountInput string
	MinMonth    int
	MaxMonth    int
	Errors      []string
	Result      *resultPanel
	Table       []percentile.Row
}

func (webUI *WebUI) newDashboardPage() dashboardPage {
	return dashboardPage{
		Title:       dashboardTitle,
		MonthInput:  strconv.Itoa(utils.MinMonth),
		AmountInput: utils.FormatAmountInput(0),
		MinMonth:    utils.MinMonth,
		MaxMonth:    utils.MaxMonth,
		Table:       webUI.PercentileTable().Rows(),
	}
}

func (webUI *WebUI) dashboardHandler(w http.ResponseWriter, r *http.Request) {
	webUI.render(w, r, http.StatusOK, "dashboard", webUI.newDashboardPage())
}

func (webUI *WebUI) calculateHandler(w http.ResponseWriter, r *http.Request) {
	page := webUI.newDashboardPage()

	if err := r.ParseForm(); err != nil {
		page.Errors = append(page.Errors, "The form could not be read. Please try again.")
		webUI.render(w, r, http.StatusBadRequest, "dashboard", page)
		return
	}

	rawMonth := utils.SanitizeInput(r.PostForm.Get("month"))
	rawAmount := utils.SanitizeInput(r.PostForm.Get("amount"))
	page.MonthInput = rawMonth
	page.AmountInput = rawAmount

	month, monthErr := strconv.Atoi(rawMonth)
	if monthErr == nil {
		monthErr = utils.ValidateMonth(month)
	}
	if monthErr != nil {
		page.Errors = append(page.Errors, invalidMonthMessage)
	}

	amount, amountErr := utils.ParseAmount(rawAmount)
	if amountErr == nil {
		amountErr = utils.ValidateAmount(amount)
	}
	if amountErr != nil {
		page.Errors = append(page.Errors, invalidAmountText)
	} else {
		page.AmountInput = utils.FormatAmountInput(amount)
	}

	if len(page.Errors) > 0 {
		webUI.render(w, r, http.StatusUnprocessableEntity, "dashboard", page)
		return
	}

	result, err := webUI.Classify(month, amount)
	if errors.Is(err, percentile.ErrMonthNotFound) {
		page.Errors = append(page.Errors, invalidMonthMessage)
		webUI.render(w, r, http.StatusUnprocessableEntity, "dashboard", page)
		return
	}
	if err != nil {
		logging.LogError(logging.FromContext(r.Context()), "classification failed", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	page.Result = &resultPanel{
		Month:           result.Month,
		Amount:          result.Amount,
		Percentile:      result.Band.String(),
		PercentileLabel: result.Band.Label(),
		Category:        string(result.Category),
		Badge:           result.Category.Badge(),
		Color:           result.Category.Color(),
		Advisory:        result.Advisory(),
	}

	webUI.render(w, r, http.StatusOK, "dashboard", page)
}

type referenceRowPage struct {
	Title string
	Row   percentile.Row
	Bands []referenceBand
}

type referenceBand struct {
	Label     string
	Threshold float64
	Badge     string
}

func (webUI *WebUI) referenceRowHandler(w http.ResponseWriter, r *http.Request) {
	id := utils.ExtractIDFromParams(r, "month")

	month, err := strconv.Atoi(strings.TrimSpace(id))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	row, err := webUI.PercentileTable().Row(month)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	page := referenceRowPage{
		Title: dashboardTitle + " - Month " + strconv.Itoa(row.Month),
		Row:   row,
	}
	for _, b := range percentile.AllBands() {
		threshold, ok := row.Threshold(b)
		if !ok {
			continue
		}
		page.Bands = append(page.Bands, referenceBand{
			Label:     b.Label(),
			Threshold: threshold,
			Badge:     b.Category().Badge(),
		})
	}

	webUI.render(w, r, http.StatusOK, "reference_row", page)
}

// render executes into a buffer so template errors never produce half a page.
func (webUI *WebUI) render(w http.ResponseWriter, r *http.Request, status int, name string, data interface{}) {
	var buf bytes.Buffer
	if err := webUI.templates.ExecuteTemplate(&buf, name, data); err != nil {
		logging.LogError(logging.FromContext(r.Context()), "failed to render page", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
