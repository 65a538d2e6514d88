package analytics

import (
	"crypto/sha256"
	"encoding/hex"
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PageEvent is one recorded visit to a public page. Section is the site
// area (home, greinar, frettir); ItemID is set when the visit targets a
// specific article or news item.
type PageEvent struct {
	ID        uint    `gorm:"primary_key;autoIncrement"`
	Section   string  `gorm:"not null;index"`
	ItemID    *string `gorm:"index"`
	Locale    string  `gorm:"index"`
	CookieID  string  `gorm:"not null;index"`
	Event     string  `gorm:"not null;default:'visit'"`
	IP        string  `gorm:"not null"`
	Language  *string
	Browser   *string
	CreatedAt time.Time `gorm:"index"`
}

// AnalyticsModule tracks public page visits. A nil module is valid and
// disables tracking, matching deployments without an analytics database.
type AnalyticsModule struct {
	db *gorm.DB
}

func NewAnalyticsModule(db *gorm.DB) *AnalyticsModule {
	if db == nil {
		log.Println("Analytics DB is nil, analytics will be disabled")
		return nil
	}

	if err := db.AutoMigrate(&PageEvent{}); err != nil {
		log.Printf("Error migrating page_events table: %v", err)
		return nil
	}

	log.Println("Analytics module initialized successfully")
	return &AnalyticsModule{db: db}
}

// TrackVisit records a visit. Repeated hits from the same visitor to the
// same page within 30 minutes are counted once.
func (a *AnalyticsModule) TrackVisit(c *gin.Context, section, locale string, itemID *string) {
	if a == nil || a.db == nil {
		return
	}

	cookieID := a.getOrCreateCookieID(c)

	thirtyMinutesAgo := time.Now().Add(-30 * time.Minute)

	var recentVisit PageEvent
	query := a.db.Where("cookie_id = ? AND section = ? AND created_at > ?",
		cookieID, section, thirtyMinutesAgo)
	if itemID != nil {
		query = query.Where("item_id = ?", *itemID)
	} else {
		query = query.Where("item_id IS NULL")
	}

	if err := query.First(&recentVisit).Error; err == nil {
		return
	}

	event := PageEvent{
		Section:   section,
		ItemID:    itemID,
		Locale:    locale,
		CookieID:  cookieID,
		Event:     "visit",
		IP:        a.getClientIP(c),
		Language:  a.extractLanguage(c),
		Browser:   a.extractBrowser(c.Request.UserAgent()),
		CreatedAt: time.Now(),
	}

	// Saved asynchronously so tracking never delays the page response.
	go func() {
		if err := a.db.Create(&event).Error; err != nil {
			log.Printf("Error saving analytics event: %v", err)
		}
	}()
}

func (a *AnalyticsModule) getOrCreateCookieID(c *gin.Context) string {
	cookieName := "frambod_visitor_id"

	if cookie, err := c.Cookie(cookieName); err == nil && cookie != "" {
		return cookie
	}

	data := time.Now().String() + c.ClientIP() + c.Request.UserAgent()
	hash := sha256.Sum256([]byte(data))
	cookieID := hex.EncodeToString(hash[:])

	c.SetCookie(
		cookieName,
		cookieID,
		60*60*24*365*2,
		"/",
		"",
		false,
		true,
	)

	return cookieID
}

func (a *AnalyticsModule) getClientIP(c *gin.Context) string {
	if ip := c.GetHeader("X-Forwarded-For"); ip != "" {
		ips := strings.Split(ip, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}
	if ip := c.GetHeader("X-Real-IP"); ip != "" {
		return ip
	}
	if ip := c.GetHeader("CF-Connecting-IP"); ip != "" {
		return ip
	}
	return c.ClientIP()
}

func (a *AnalyticsModule) extractBrowser(userAgent string) *string {
	if userAgent == "" {
		return nil
	}

	ua := strings.ToLower(userAgent)
	var browser string

	switch {
	case strings.Contains(ua, "edg"):
		browser = "Edge"
	case strings.Contains(ua, "chrome") && !strings.Contains(ua, "edg"):
		browser = "Chrome"
	case strings.Contains(ua, "safari") && !strings.Contains(ua, "chrome"):
		browser = "Safari"
	case strings.Contains(ua, "firefox"):
		browser = "Firefox"
	case strings.Contains(ua, "opera") || strings.Contains(ua, "opr"):
		browser = "Opera"
	case strings.Contains(ua, "msie") || strings.Contains(ua, "trident"):
		browser = "Internet Explorer"
	default:
		browser = "Other"
	}

	return &browser
}

func (a *AnalyticsModule) extractLanguage(c *gin.Context) *string {
	acceptLang := c.GetHeader("Accept-Language")
	if acceptLang == "" {
		return nil
	}

	parts := strings.Split(acceptLang, ",")
	if len(parts) > 0 {
		lang := strings.TrimSpace(parts[0])
		lang = strings.Split(lang, ";")[0]
		return &lang
	}
	return nil
}

// DayVisits is the visit count of a single day.
type DayVisits struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// ItemVisits is the visit count of a single item within a section.
type ItemVisits struct {
	Section string `json:"section"`
	ItemID  string `json:"itemId"`
	Count   int64  `json:"count"`
}

// GetVisitsByDay returns per-day visit counts for the last N days, zero
// filled so charts have a point for every day.
func (a *AnalyticsModule) GetVisitsByDay(days int) []DayVisits {
	if a == nil || a.db == nil {
		return []DayVisits{}
	}

	startDate := time.Now().AddDate(0, 0, -days)

	var results []struct {
		Date  string
		Count int64
	}

	a.db.Model(&PageEvent{}).
		Select("DATE(created_at) as date, COUNT(*) as count").
		Where("created_at >= ?", startDate).
		Group("DATE(created_at)").
		Order("date ASC").
		Scan(&results)

	dayVisits := make([]DayVisits, days)
	for i := 0; i < days; i++ {
		date := time.Now().AddDate(0, 0, -(days - 1 - i))
		dayVisits[i] = DayVisits{Date: date.Format("2006-01-02"), Count: 0}
	}

	for _, result := range results {
		for i := range dayVisits {
			if dayVisits[i].Date == result.Date {
				dayVisits[i].Count = result.Count
				break
			}
		}
	}

	return dayVisits
}

// GetTopItems returns the most visited items of the last N days.
func (a *AnalyticsModule) GetTopItems(days, limit int) []ItemVisits {
	if a == nil || a.db == nil {
		return []ItemVisits{}
	}

	startDate := time.Now().AddDate(0, 0, -days)

	var results []ItemVisits
	a.db.Model(&PageEvent{}).
		Select("section as section, item_id as item_id, COUNT(*) as count").
		Where("item_id IS NOT NULL AND created_at >= ?", startDate).
		Group("section, item_id").
		Order("count DESC").
		Limit(limit).
		Scan(&results)

	return results
}
