package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type endpoint struct {
	Description string   `json:"description"`
	Queries     []string `json:"queries,omitempty"`
	RequestBody gin.H    `json:"requestBody,omitempty"`
}

var endpoints = map[string]endpoint{
	"GET /api": {
		Description: "serves a json representation of all the available endpoints of the api",
	},
	"GET /api/topics": {
		Description: "serves an array of all topics",
	},
	"POST /api/topics": {
		Description: "adds a topic and serves it",
		RequestBody: gin.H{"slug": "string", "description": "string"},
	},
	"GET /api/articles": {
		Description: "serves a page of articles without bodies, and the total count matching the topic filter",
		Queries:     []string{"topic", "sort_by", "order", "p", "limit"},
	},
	"POST /api/articles": {
		Description: "adds an article and serves it with a comment_count of 0",
		RequestBody: gin.H{"author": "string", "title": "string", "body": "string", "topic": "string", "article_img_url": "string (optional)"},
	},
	"GET /api/articles/:article_id": {
		Description: "serves an article with its body and comment_count",
	},
	"PATCH /api/articles/:article_id": {
		Description: "adds inc_votes to the article's votes and serves the updated article",
		RequestBody: gin.H{"inc_votes": "integer"},
	},
	"DELETE /api/articles/:article_id": {
		Description: "deletes an article and its comments",
	},
	"GET /api/articles/:article_id/comments": {
		Description: "serves a page of an article's comments, most recent first",
		Queries:     []string{"p", "limit"},
	},
	"POST /api/articles/:article_id/comments": {
		Description: "adds a comment to an article and serves it",
		RequestBody: gin.H{"username": "string", "body": "string"},
	},
	"PATCH /api/comments/:comment_id": {
		Description: "adds inc_votes to the comment's votes and serves the updated comment",
		RequestBody: gin.H{"inc_votes": "integer"},
	},
	"DELETE /api/comments/:comment_id": {
		Description: "deletes a comment",
	},
	"GET /api/users": {
		Description: "serves an array of all users",
	},
	"GET /api/users/:username": {
		Description: "serves a single user",
	},
}

// getEndpoints handles GET /api
func getEndpoints(c *gin.Context) {
	c.JSON(http.StatusOK, endpoints)
}
