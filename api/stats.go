package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"frambod/analytics"
	"frambod/content"
)

type topItem struct {
	Section string `json:"section"`
	ItemID  string `json:"itemId"`
	Title   string `json:"title"`
	Count   int64  `json:"count"`
}

// stats feeds the admin dashboard: visits per day for the last two weeks
// and the most read items of the last month, with titles resolved.
func (m *ContentModule) stats(c *gin.Context) {
	if m.analytics == nil {
		c.JSON(http.StatusOK, gin.H{
			"enabled":     false,
			"visitsByDay": []analytics.DayVisits{},
			"topItems":    []topItem{},
		})
		return
	}

	visits := m.analytics.GetVisitsByDay(15)
	raw := m.analytics.GetTopItems(30, 10)

	titles := map[string]string{}
	for _, col := range []*content.Collection{m.articles, m.news} {
		items, err := col.List(c.Request.Context())
		if err != nil {
			log.Printf("Error loading %s for stats: %v", col.Document(), err)
			continue
		}
		for _, item := range items {
			titles[item.ID()] = item.Title()
		}
	}

	top := make([]topItem, 0, len(raw))
	for _, r := range raw {
		title := titles[r.ItemID]
		if title == "" {
			title = r.ItemID
		}
		top = append(top, topItem{
			Section: r.Section,
			ItemID:  r.ItemID,
			Title:   title,
			Count:   r.Count,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"enabled":     true,
		"visitsByDay": visits,
		"topItems":    top,
	})
}
