package handlers

import (
	"html/template"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"risk-analysis/models"
	"risk-analysis/session"
)

type PageData struct {
	Ticker        string
	DisplayTicker string
	Error         string
	Loading       bool
	Result        *models.Result

	// PlotURL is the data URI for the plot image. html/template
	// refuses data: URLs from plain strings, so it is built here as
	// template.URL.
	PlotURL template.URL
}

// Index renders the page with whatever the session currently holds.
func Index(c *gin.Context) {
	renderPage(c, sess.Snapshot())
}

// AnalyzePage handles the ticker form: update the session, run the
// analyze action, render the page with the settled state.
func AnalyzePage(c *gin.Context) {
	sess.SetTicker(c.Query("ticker"))
	state := sess.Analyze(c.Request.Context())
	renderPage(c, state)
}

func renderPage(c *gin.Context, state session.State) {
	data := PageData{
		Ticker: state.Ticker,
		// Uppercase for display only, the ticker is sent as typed
		DisplayTicker: strings.ToUpper(strings.TrimSpace(state.Ticker)),
		Error:         state.Error,
		Loading:       state.Loading,
		Result:        state.Analysis,
	}

	if state.Analysis != nil && state.Analysis.Plot != "" {
		data.PlotURL = template.URL("data:image/png;base64," + state.Analysis.Plot)
	}

	c.HTML(http.StatusOK, "index.html", data)
}
