package reference

import "strings"

// Pesticide 描述农药目录中的一条商品资料。
type Pesticide struct {
	ID          string  `json:"id"`          // 商品ID
	Name        string  `json:"name"`        // 商品名称
	Description string  `json:"description"` // 简介
	Category    string  `json:"category"`    // 类别: Insecticide / Fungicide / Herbicide
	Image       string  `json:"image"`       // 商品图片URL
	Price       float64 `json:"price"`       // 参考价格（美元）
	Rating      float64 `json:"rating"`      // 用户评分 (0-5)
	Usage       string  `json:"usage"`       // 使用说明
	AmazonURL   string  `json:"amazon_url"`  // 外部购买链接
}

// PesticideCategories 是目录支持的全部类别（用于前端筛选）。
var PesticideCategories = []string{"Insecticide", "Fungicide", "Herbicide"}

var pesticides = []Pesticide{
	{
		ID:          "neem-oil-concentrate",
		Name:        "Neem Oil Concentrate",
		Description: "Broad-spectrum organic insecticide and fungicide suitable for vegetables and fruit trees.",
		Category:    "Insecticide",
		Image:       "https://images.unsplash.com/photo-1615485290382-441e4d049cb5?w=800&h=600&fit=crop",
		Price:       14.99,
		Rating:      4.5,
		Usage:       "Dilute 30ml per 4L of water and spray foliage in the evening, repeat every 7-14 days.",
		AmazonURL:   "https://www.amazon.com/s?k=neem+oil+concentrate",
	},
	{
		ID:          "copper-fungicide",
		Name:        "Copper Fungicide Spray",
		Description: "Protective copper-based fungicide for blight, leaf spot and downy mildew control.",
		Category:    "Fungicide",
		Image:       "https://images.unsplash.com/photo-1585687433141-694dd4fc82f2?w=800&h=600&fit=crop",
		Price:       19.99,
		Rating:      4.3,
		Usage:       "Apply at first sign of disease and repeat at 7-10 day intervals; do not exceed label rates.",
		AmazonURL:   "https://www.amazon.com/s?k=copper+fungicide",
	},
	{
		ID:          "bt-caterpillar-control",
		Name:        "Bt Caterpillar Control",
		Description: "Bacillus thuringiensis biological insecticide targeting caterpillars without harming beneficials.",
		Category:    "Insecticide",
		Image:       "https://images.unsplash.com/photo-1599076480185-95e5e4b49021?w=800&h=600&fit=crop",
		Price:       12.49,
		Rating:      4.6,
		Usage:       "Mix 5ml per litre of water and spray when larvae are small; reapply after rain.",
		AmazonURL:   "https://www.amazon.com/s?k=bt+insecticide",
	},
	{
		ID:          "glyphosate-free-weed-killer",
		Name:        "Glyphosate-Free Weed Killer",
		Description: "Fast-acting contact herbicide based on fatty acids for non-crop areas and row middles.",
		Category:    "Herbicide",
		Image:       "https://images.unsplash.com/photo-1589922585618-2e2f8d75c58a?w=800&h=600&fit=crop",
		Price:       24.99,
		Rating:      4.1,
		Usage:       "Spray weeds until thoroughly wet on a warm, dry day; avoid contact with crop foliage.",
		AmazonURL:   "https://www.amazon.com/s?k=organic+weed+killer",
	},
	{
		ID:          "sulfur-dust",
		Name:        "Sulfur Dust Fungicide",
		Description: "Traditional sulfur dust for powdery mildew and mite suppression on vines and vegetables.",
		Category:    "Fungicide",
		Image:       "https://images.unsplash.com/photo-1628352081506-83c43123ed6d?w=800&h=600&fit=crop",
		Price:       9.99,
		Rating:      4.0,
		Usage:       "Dust lightly over foliage when temperatures are below 32°C; do not combine with oil sprays.",
		AmazonURL:   "https://www.amazon.com/s?k=sulfur+dust+fungicide",
	},
}

// ListPesticides 返回农药目录条目。
// - category 为空或 "all" 时不过滤类别。
// - keyword 非空时按名称或简介做不区分大小写的包含过滤。
func ListPesticides(category, keyword string) []Pesticide {
	keyword = strings.ToLower(keyword)
	matched := make([]Pesticide, 0, len(pesticides))
	for _, p := range pesticides {
		if category != "" && category != "all" && !strings.EqualFold(p.Category, category) {
			continue
		}
		if keyword != "" &&
			!strings.Contains(strings.ToLower(p.Name), keyword) &&
			!strings.Contains(strings.ToLower(p.Description), keyword) {
			continue
		}
		matched = append(matched, p)
	}
	return matched
}
