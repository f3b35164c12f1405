package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AnalyticsHandler serves dashboard aggregates. The numbers are static
// placeholders until a real analytics pipeline lands.
type AnalyticsHandler struct{}

func NewAnalyticsHandler() *AnalyticsHandler {
	return &AnalyticsHandler{}
}

// Dashboard returns headline metrics for the admin dashboard
func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"totalLeads":     150,
			"newLeads":       25,
			"qualifiedLeads": 45,
			"closedDeals":    12,
			"revenue":        125000,
			"conversionRate": 8.5,
			"monthlyGrowth":  15.2,
			"activeClients":  89,
		},
	})
}

// General returns traffic, lead generation and performance breakdowns
func (h *AnalyticsHandler) General(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"websiteTraffic": gin.H{
				"pageViews":          12500,
				"uniqueVisitors":     8750,
				"bounceRate":         35.2,
				"avgSessionDuration": 180,
			},
			"leadGeneration": gin.H{
				"totalLeads":     150,
				"conversionRate": 8.5,
				"leadSources": gin.H{
					"website":       85,
					"referral":      35,
					"socialMedia":   20,
					"emailCampaign": 10,
				},
			},
			"performance": gin.H{
				"avgLoadTime": 1.2,
				"errorRate":   0.5,
				"uptime":      99.9,
			},
		},
	})
}
