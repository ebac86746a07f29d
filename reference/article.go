package reference

// Article 描述学习资源页中的一条文章或视频资料。
type Article struct {
	ID          string `json:"id"`          // 资料ID
	Title       string `json:"title"`       // 标题
	Source      string `json:"source"`      // 来源媒体
	Date        string `json:"date"`        // 发布日期 (YYYY-MM-DD)
	Category    string `json:"category"`    // 类别: news / guide / video / blog
	Image       string `json:"image"`       // 封面图URL
	URL         string `json:"url"`         // 原文链接
	Likes       int    `json:"likes"`       // 点赞数（静态展示值）
	Description string `json:"description"` // 摘要
}

var articles = []Article{
	{
		ID:          "sustainable-farming-2024",
		Title:       "Sustainable Farming Practices for 2024",
		Source:      "Agriculture Today",
		Date:        "2024-03-15",
		Category:    "news",
		Image:       "https://images.unsplash.com/photo-1625246333195-78d9c38ad449?w=800&h=600&fit=crop",
		URL:         "https://agriculturetoday.example.com/sustainable-farming-2024",
		Likes:       245,
		Description: "Learn about the latest sustainable farming practices that are revolutionizing agriculture.",
	},
	{
		ID:          "organic-pest-control-guide",
		Title:       "Complete Guide to Organic Pest Control",
		Source:      "Farming Experts",
		Date:        "2024-03-14",
		Category:    "guide",
		Image:       "https://images.unsplash.com/photo-1530836369250-ef72a3f5cda8?w=800&h=600&fit=crop",
		URL:         "https://farmingexperts.example.com/organic-pest-control",
		Likes:       189,
		Description: "A comprehensive guide to managing pests naturally without harmful chemicals.",
	},
	{
		ID:          "modern-irrigation-techniques",
		Title:       "Modern Irrigation Techniques Explained",
		Source:      "FarmTech Weekly",
		Date:        "2024-03-13",
		Category:    "video",
		Image:       "https://images.unsplash.com/photo-1563514227147-6d2ff665a6a0?w=800&h=600&fit=crop",
		URL:         "https://farmtechweekly.example.com/irrigation-video",
		Likes:       156,
		Description: "A comprehensive video guide on modern irrigation systems and water management.",
	},
	{
		ID:          "crop-rotation-soil-health",
		Title:       "Crop Rotation for Sustainable Farming",
		Source:      "AgroWorld News",
		Date:        "2024-03-18",
		Category:    "news",
		Image:       "https://images.unsplash.com/photo-1500937386664-56d1dfef3854?w=800&h=600&fit=crop",
		URL:         "https://agroworld.example.com/crop-rotation",
		Likes:       245,
		Description: "How crop rotation techniques improve soil health and maximize yields.",
	},
	{
		ID:          "soil-ph-and-fertility",
		Title:       "Understanding Soil pH and Fertility",
		Source:      "GreenGrowers Blog",
		Date:        "2024-03-22",
		Category:    "blog",
		Image:       "https://images.unsplash.com/photo-1464226184884-fa280b87c399?w=800&h=600&fit=crop",
		URL:         "https://greengrowers.example.com/soil-ph",
		Likes:       198,
		Description: "A deep dive into soil pH management and its role in growing healthy crops.",
	},
}

// ListArticles 返回学习资源条目，category 为空或 "all" 时不过滤。
func ListArticles(category string) []Article {
	if category == "" || category == "all" {
		return articles
	}
	matched := make([]Article, 0, len(articles))
	for _, a := range articles {
		if a.Category == category {
			matched = append(matched, a)
		}
	}
	return matched
}
