package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/gcbaptista/feedrank/internal/errors"
	"github.com/gcbaptista/feedrank/model"
)

// pageData feeds templates/page.html.
type pageData struct {
	Texts       []string
	Result      *model.FeedResult
	ChartRadius float64
	Error       string
}

// PageHandler renders the empty input form.
func (api *API) PageHandler(c *gin.Context) {
	c.HTML(http.StatusOK, "page.html", pageData{
		Texts:       make([]string, api.feed.PostCount()),
		ChartRadius: api.feed.ChartRadius(),
	})
}

// PageSubmitHandler classifies the submitted sentences and, when the rerank
// button was pressed, renders the reranked table, statistics and chart.
// Form fields: texts (repeated), action ("classify" or "rerank").
func (api *API) PageSubmitHandler(c *gin.Context) {
	texts := c.PostFormArray("texts")
	data := pageData{
		Texts:       texts,
		ChartRadius: api.feed.ChartRadius(),
	}

	if result := ValidateTexts(texts, api.feed.PostCount()); result.HasErrors() {
		data.Texts = padTexts(texts, api.feed.PostCount())
		data.Error = result.Errors[0].Message
		c.HTML(http.StatusBadRequest, "page.html", data)
		return
	}

	ctx := c.Request.Context()
	posts, err := api.feed.Classify(ctx, texts)
	if err != nil {
		_ = c.Error(err)
		status := http.StatusInternalServerError
		if errors.Is(err, apperrors.ErrInvalidInput) {
			status = http.StatusBadRequest
		}
		data.Error = err.Error()
		c.HTML(status, "page.html", data)
		return
	}

	if c.PostForm("action") == "rerank" {
		result := api.feed.Rerank(ctx, posts)
		data.Result = &result
	} else {
		data.Result = &model.FeedResult{Original: posts}
	}

	c.HTML(http.StatusOK, "page.html", data)
}

func padTexts(texts []string, n int) []string {
	out := make([]string, n)
	copy(out, texts)
	return out
}
