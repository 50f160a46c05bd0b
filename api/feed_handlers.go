package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/feedrank/model"
)

// FeedRequest asks for a set of texts to be classified and, optionally, reranked.
type FeedRequest struct {
	Texts  []string `json:"texts" binding:"required"`
	Rerank bool     `json:"rerank"`
}

// PostsRequest carries posts whose categories are already known.
type PostsRequest struct {
	Posts []model.Post `json:"posts" binding:"required"`
}

// FeedHandler classifies the submitted texts.
// Request Body: FeedRequest
func (api *API) FeedHandler(c *gin.Context) {
	var req FeedRequest
	if result := ValidateJSONBinding(c, &req); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	if result := ValidateTexts(req.Texts, api.feed.PostCount()); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	result, err := api.feed.Process(c.Request.Context(), req.Texts, req.Rerank)
	if err != nil {
		_ = c.Error(err)
		SendPipelineError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// RerankHandler reranks posts supplied with their categories. Any number of
// posts is accepted, including none.
// Request Body: PostsRequest
func (api *API) RerankHandler(c *gin.Context) {
	var req PostsRequest
	if result := ValidateJSONBinding(c, &req); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	if result := ValidatePosts(req.Posts); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	c.JSON(http.StatusOK, api.feed.Rerank(c.Request.Context(), req.Posts))
}

// StatisticsHandler summarizes posts in the order given.
// Request Body: PostsRequest
func (api *API) StatisticsHandler(c *gin.Context) {
	var req PostsRequest
	if result := ValidateJSONBinding(c, &req); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	if result := ValidatePosts(req.Posts); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	c.JSON(http.StatusOK, api.feed.Statistics(req.Posts))
}

// CategoriesHandler lists the category priority table.
func (api *API) CategoriesHandler(c *gin.Context) {
	categories := api.feed.Categories()
	c.JSON(http.StatusOK, gin.H{"categories": categories, "count": len(categories)})
}
